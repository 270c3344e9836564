package storage

import "errors"

var (
	ErrPhotoNotFound   = errors.New("photo not found")
	ErrSettingNotFound = errors.New("setting not found")
	ErrSettingExists   = errors.New("setting exists")
)
