// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app runs the modelconfig commands: it composes model
// configurations through the service layer, resolves them and renders the
// outcome in the requested output format.
//
// All Msg* constants are human-readable message strings written into log
// entries or rendered reports. Keeping them in one place ensures consistent
// wording throughout the command output.
package app

const (
	// MsgConfigBuilt is logged when a scenario produced a record.
	MsgConfigBuilt = "model config built"

	// MsgConfigRejected is logged when a scenario was rejected while
	// building, e.g. because a parameter type was supplied twice.
	MsgConfigRejected = "model config rejected"

	// MsgConfigResolved is logged when a record passed validation.
	MsgConfigResolved = "model config resolved"

	// MsgConfigInvalid is logged when a record failed one of the
	// configuration constraints.
	MsgConfigInvalid = "model config failed validation"

	// MsgRenderFailed is logged when the report could not be written.
	MsgRenderFailed = "error rendering report"
)
