package handler

import (
	"Souq/pkg/response"
	"Souq/service"
	"errors"
)

// business error codes returned in the response envelope
const (
	codeValidation    = 4000
	codeNoDelivery    = 4001
	codeInvalidCode   = 4002
	codeNoStock       = 4003
	codeBadTransition = 4004
	codeOrderNotFound = 4040
)

// bizOf maps service rejections onto envelope codes. Referral rejections
// unwrap to ErrInvalidCode, so both surface with the same code and text.
func bizOf(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidCode):
		return response.NewError(codeInvalidCode, service.ErrInvalidCode.Error())
	case errors.Is(err, service.ErrUnsupportedDelivery):
		return response.NewError(codeNoDelivery, err.Error())
	case errors.Is(err, service.ErrInsufficientStock):
		return response.NewError(codeNoStock, err.Error())
	case errors.Is(err, service.ErrInvalidTransition):
		return response.NewError(codeBadTransition, err.Error())
	case errors.Is(err, service.ErrOrderNotFound):
		return response.NewError(codeOrderNotFound, err.Error())
	case errors.Is(err, service.ErrUnknownLocation),
		errors.Is(err, service.ErrProductUnavailable),
		errors.Is(err, service.ErrUnknownSpecValue):
		return response.NewError(codeValidation, err.Error())
	default:
		return err
	}
}
