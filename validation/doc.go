// Package validation validates request structs with go-playground/validator.
//
// Field names in messages follow json tags. Besides the built-in rules the
// package registers "langcode" for caption language tags.
//
//	type Defaults struct {
//	    Languages []string `json:"languages" validate:"min=1,dive,langcode"`
//	}
//	if err := validation.Validate(req); err != nil { ... } // *errors.AppError
package validation
