package sizes_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"photofolio/internal/lib/apperr"
	"photofolio/internal/lib/logger/handlers/slogdiscard"
	"photofolio/internal/models"
	"photofolio/internal/sizes"
	"photofolio/internal/sizes/mocks"
)

func TestBuiltIns(t *testing.T) {
	got := sizes.BuiltIns()
	require.Len(t, got, 6)

	names := make([]string, 0, len(got))
	for _, s := range got {
		names = append(names, s.Name)
		require.False(t, s.IsCustom)
		require.NoError(t, sizes.Validate(s))
	}
	require.Equal(t, []string{"thumbnail", "small", "medium", "large", "xlarge", "splash"}, names)

	require.Equal(t, []string{"splash", "xlarge", "large", "medium", "small", "thumbnail"}, sizes.RegenerationOrder())

	got[0].Width = 1
	require.Equal(t, 200, sizes.BuiltIns()[0].Width, "BuiltIns must return a copy")
}

func TestRegistryLoad(t *testing.T) {
	lister := mocks.NewSettingLister(t)

	banner, err := sizes.EncodeSetting("owner-1", sizes.Spec{Name: "banner", Width: 1000, Height: 300, Quality: 80})
	require.NoError(t, err)
	avatar, err := sizes.EncodeSetting("owner-1", sizes.Spec{Name: "avatar", Width: 64, Height: 64, Quality: 70})
	require.NoError(t, err)

	rows := []models.Setting{
		banner,
		{OwnerID: "owner-1", Key: "broken", Value: "{not json", Category: models.CategoryImageSizes},
		{OwnerID: "owner-1", Key: "huge", Value: `{"width":9000,"height":10,"quality":50}`, Category: models.CategoryImageSizes},
		avatar,
	}

	lister.On("ListSettings", mock.Anything, "owner-1", models.CategoryImageSizes).Return(rows, nil).Once()

	reg := sizes.NewRegistry(slogdiscard.NewDiscardLogger(), lister)

	set, err := reg.Load(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Equal(t, 8, set.Len())

	all := set.All()
	require.Equal(t, "avatar", all[6].Name)
	require.Equal(t, "banner", all[7].Name)
	require.True(t, all[7].IsCustom)

	spec, ok := set.Get("banner")
	require.True(t, ok)
	require.Equal(t, sizes.Spec{Name: "banner", Width: 1000, Height: 300, Quality: 80, IsCustom: true}, spec)

	require.False(t, set.Has("broken"))
	require.False(t, set.Has("huge"))
	require.True(t, set.Has("splash"))
}

func TestRegistryLoadError(t *testing.T) {
	lister := mocks.NewSettingLister(t)
	lister.On("ListSettings", mock.Anything, "owner-1", models.CategoryImageSizes).Return(nil, errors.New("db down")).Once()

	reg := sizes.NewRegistry(slogdiscard.NewDiscardLogger(), lister)

	_, err := reg.Load(context.Background(), "owner-1")
	require.Error(t, err)
}

func TestNewSetDropsShadowingCustom(t *testing.T) {
	set := sizes.NewSet([]sizes.Spec{{Name: "thumbnail", Width: 10, Height: 10, Quality: 10}})

	require.Equal(t, 6, set.Len())
	spec, ok := set.Get("thumbnail")
	require.True(t, ok)
	require.Equal(t, 200, spec.Width)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    sizes.Spec
		wantErr string
	}{
		{
			name: "Valid",
			spec: sizes.Spec{Name: "banner", Width: 1000, Height: 300, Quality: 80},
		},
		{
			name: "Upper bound",
			spec: sizes.Spec{Name: "poster_4k", Width: 4000, Height: 4000, Quality: 100},
		},
		{
			name:    "Too wide",
			spec:    sizes.Spec{Name: "banner", Width: 4001, Height: 300, Quality: 80},
			wantErr: "width must be between 1 and 4000",
		},
		{
			name:    "Zero height",
			spec:    sizes.Spec{Name: "banner", Width: 100, Height: 0, Quality: 80},
			wantErr: "height must be between 1 and 4000",
		},
		{
			name:    "Quality out of range",
			spec:    sizes.Spec{Name: "banner", Width: 100, Height: 100, Quality: 101},
			wantErr: "quality must be between 1 and 100",
		},
		{
			name:    "Path in name",
			spec:    sizes.Spec{Name: "../etc", Width: 100, Height: 100, Quality: 80},
			wantErr: "name must start with a lowercase letter",
		},
		{
			name:    "Empty name",
			spec:    sizes.Spec{Width: 100, Height: 100, Quality: 80},
			wantErr: "name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sizes.Validate(tt.spec)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, apperr.ErrValidation)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
