// Package punit: sentinel error set.
package punit

import "errors"

var (
	// ErrNoBase indicates PerUnit() was read but no conversion base was attached.
	ErrNoBase = errors.New("punit: no per-unit base attached to value")

	// ErrZeroBase indicates a conversion base of zero was supplied, which would
	// make per-unit conversion divide by zero.
	ErrZeroBase = errors.New("punit: conversion base is zero")

	// ErrUnitMismatch indicates an arithmetic operation was attempted between
	// two Values whose units are not compatible for that operation.
	ErrUnitMismatch = errors.New("punit: incompatible units")
)
