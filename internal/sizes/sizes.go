// Package sizes holds the rendition size registry: the six compiled-in sizes
// and the owner-defined custom sizes stored as settings.
package sizes

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"photofolio/internal/lib/apperr"
	"photofolio/internal/lib/logger/sl"
	"photofolio/internal/models"
)

const (
	MaxDimension = 4000
	MaxQuality   = 100
)

type Spec struct {
	Name     string `json:"name" validate:"required,sizename"`
	Width    int    `json:"width" validate:"min=1,max=4000"`
	Height   int    `json:"height" validate:"min=1,max=4000"`
	Quality  int    `json:"quality" validate:"min=1,max=100"`
	IsCustom bool   `json:"is_custom"`
}

// Ordered from smallest to largest.
var builtIns = []Spec{
	{Name: "thumbnail", Width: 200, Height: 200, Quality: 80},
	{Name: "small", Width: 400, Height: 400, Quality: 80},
	{Name: "medium", Width: 800, Height: 800, Quality: 85},
	{Name: "large", Width: 1200, Height: 1200, Quality: 85},
	{Name: "xlarge", Width: 1600, Height: 1600, Quality: 90},
	{Name: "splash", Width: 2000, Height: 2000, Quality: 90},
}

func BuiltIns() []Spec {
	out := make([]Spec, len(builtIns))
	copy(out, builtIns)
	return out
}

func IsBuiltIn(name string) bool {
	for _, s := range builtIns {
		if s.Name == name {
			return true
		}
	}
	return false
}

// RegenerationOrder lists the built-in names from largest to smallest. It is
// the preference order for picking a source when deriving a new rendition.
func RegenerationOrder() []string {
	out := make([]string, 0, len(builtIns))
	for i := len(builtIns) - 1; i >= 0; i-- {
		out = append(out, builtIns[i].Name)
	}
	return out
}

// Set is the merged size list of one owner, loaded once per operation.
type Set struct {
	specs []Spec
}

// NewSet merges the built-ins with custom, which is sorted by name. Custom
// entries that reuse a built-in name are dropped.
func NewSet(custom []Spec) Set {
	specs := BuiltIns()

	extra := make([]Spec, 0, len(custom))
	for _, c := range custom {
		if IsBuiltIn(c.Name) {
			continue
		}
		c.IsCustom = true
		extra = append(extra, c)
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i].Name < extra[j].Name })

	return Set{specs: append(specs, extra...)}
}

func (s Set) All() []Spec {
	out := make([]Spec, len(s.specs))
	copy(out, s.specs)
	return out
}

func (s Set) Get(name string) (Spec, bool) {
	for _, spec := range s.specs {
		if spec.Name == name {
			return spec, true
		}
	}
	return Spec{}, false
}

func (s Set) Has(name string) bool {
	_, ok := s.Get(name)
	return ok
}

func (s Set) Len() int {
	return len(s.specs)
}

type storedValue struct {
	Width   int `json:"width"`
	Height  int `json:"height"`
	Quality int `json:"quality"`
}

// EncodeSetting renders spec as the setting row that persists it.
func EncodeSetting(ownerID string, spec Spec) (models.Setting, error) {
	b, err := json.Marshal(storedValue{Width: spec.Width, Height: spec.Height, Quality: spec.Quality})
	if err != nil {
		return models.Setting{}, err
	}

	return models.Setting{
		OwnerID:  ownerID,
		Key:      spec.Name,
		Value:    string(b),
		Type:     models.SettingTypeJSON,
		Category: models.CategoryImageSizes,
	}, nil
}

func decodeSetting(s models.Setting) (Spec, error) {
	var v storedValue
	if err := json.Unmarshal([]byte(s.Value), &v); err != nil {
		return Spec{}, err
	}

	spec := Spec{Name: s.Key, Width: v.Width, Height: v.Height, Quality: v.Quality, IsCustom: true}
	if err := validate.Struct(spec); err != nil {
		return Spec{}, err
	}

	return spec, nil
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SettingLister
type SettingLister interface {
	ListSettings(ctx context.Context, ownerID, category string) ([]models.Setting, error)
}

type Registry struct {
	log      *slog.Logger
	settings SettingLister
}

func NewRegistry(log *slog.Logger, settings SettingLister) *Registry {
	return &Registry{
		log:      log,
		settings: settings,
	}
}

// Custom returns the owner's custom sizes. Rows that cannot be parsed are
// skipped with a warning.
func (r *Registry) Custom(ctx context.Context, ownerID string) ([]Spec, error) {
	const op = "sizes.Registry.Custom"

	rows, err := r.settings.ListSettings(ctx, ownerID, models.CategoryImageSizes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]Spec, 0, len(rows))
	for _, row := range rows {
		spec, err := decodeSetting(row)
		if err != nil {
			r.log.Warn("skipping malformed custom size",
				slog.String("op", op),
				slog.String("owner_id", ownerID),
				slog.String("name", row.Key),
				sl.Err(err),
			)
			continue
		}
		out = append(out, spec)
	}

	return out, nil
}

func (r *Registry) Load(ctx context.Context, ownerID string) (Set, error) {
	custom, err := r.Custom(ctx, ownerID)
	if err != nil {
		return Set{}, err
	}

	return NewSet(custom), nil
}

var nameRe = regexp.MustCompile(`^[a-z][a-z0-9_-]{0,31}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("sizename", func(fl validator.FieldLevel) bool {
		return nameRe.MatchString(fl.Field().String())
	})
	return v
}

// Validate checks the name format and the dimension and quality bounds.
func Validate(spec Spec) error {
	err := validate.Struct(spec)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperr.Validation("invalid size: %v", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "sizename":
			msgs = append(msgs, "name must start with a lowercase letter and contain only a-z, 0-9, '-' or '_' (max 32)")
		case "required":
			msgs = append(msgs, field+" is required")
		case "min", "max":
			if fe.Field() == "Quality" {
				msgs = append(msgs, fmt.Sprintf("quality must be between 1 and %d", MaxQuality))
			} else {
				msgs = append(msgs, fmt.Sprintf("%s must be between 1 and %d", field, MaxDimension))
			}
		default:
			msgs = append(msgs, field+" is not valid")
		}
	}

	return apperr.Validation("%s", strings.Join(msgs, "; "))
}
