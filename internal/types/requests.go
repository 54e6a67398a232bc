package types

import (
	"github.com/go-playground/validator/v10"
)

// ResolveRequest represents a title resolution request.
type ResolveRequest struct {
	RoleTitle      string `json:"role_title" validate:"required,min=1"`
	RoleFamilyHint string `json:"role_family_hint,omitempty"`
	JDText         string `json:"jd_text,omitempty"`
}

// CreateJobRequest represents the request to register a new job target.
type CreateJobRequest struct {
	RoleTitle   string    `json:"role_title" validate:"required,min=1"`
	CompanyName string    `json:"company_name,omitempty"`
	JDText      string    `json:"jd_text,omitempty"`
	ParsedJD    *ParsedJD `json:"parsed_jd,omitempty"`
}

// AdminLoginRequest represents an admin key exchange request.
type AdminLoginRequest struct {
	Key string `json:"key" validate:"required"`
}

// AdminLoginResponse carries the bearer token for admin endpoints.
type AdminLoginResponse struct {
	Token string `json:"token"`
}

// ReprocessRequest tunes a batch reprocess run. Workers defaults to the
// server's configured pool size when zero.
type ReprocessRequest struct {
	Workers int `json:"workers,omitempty" validate:"omitempty,min=1,max=32"`
}

// Validate validates the ResolveRequest using the validator.
func (r *ResolveRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateJobRequest using the validator.
func (r *CreateJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AdminLoginRequest using the validator.
func (r *AdminLoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ReprocessRequest using the validator.
func (r *ReprocessRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
