package apperr

import (
	"errors"
	"fmt"
)

// ===============================
// Taxonomia de erros do domínio
// ===============================

type Kind int

const (
	// Entrada malformada ou incompleta; o chamador corrige e repete.
	KindValidation Kind = iota + 1
	// Registro inexistente ou pertencente a outro dono. A resposta
	// nunca distingue os dois casos.
	KindNotFound
	// Violação de unicidade no armazenamento.
	KindConflict
	// Falha de acesso a dados; transitória, seguro repetir.
	KindConnectivity
)

type Error struct {
	Kind Kind
	Code string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return e.Code
}

func (e *Error) Unwrap() error {
	return e.Err
}

// --------- Construtores ---------

func Validation(code string) *Error {
	return &Error{Kind: KindValidation, Code: code}
}

func NotFound(code string) *Error {
	return &Error{Kind: KindNotFound, Code: code}
}

func Conflict(code string) *Error {
	return &Error{Kind: KindConflict, Code: code}
}

func Connectivity(err error) *Error {
	return &Error{Kind: KindConnectivity, Code: "storage_unavailable", Err: err}
}

// --------- Inspeção ---------

func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return 0
}

func CodeOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return "internal_error"
}

func IsValidation(err error) bool   { return KindOf(err) == KindValidation }
func IsNotFound(err error) bool     { return KindOf(err) == KindNotFound }
func IsConflict(err error) bool     { return KindOf(err) == KindConflict }
func IsConnectivity(err error) bool { return KindOf(err) == KindConnectivity }
