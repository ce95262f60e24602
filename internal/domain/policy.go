package domain

import (
	"fmt"
	"strings"
)

// Policy is a VM placement policy evaluated by the simulation.
type Policy int

const (
	PolicyUnknown Policy = iota
	PolicyFirstFit
	PolicyEnergyAware
	PolicyCIAVMP
)

// Identifiers written by the simulation into the summary's policy column.
const (
	FirstFitID    = "FIRST_FIT"
	EnergyAwareID = "ENERGY_AWARE"
	CIAVMPID      = "CIAVMP"
)

// KnownPolicies lists the recognized policies in their canonical order.
var KnownPolicies = []Policy{PolicyFirstFit, PolicyEnergyAware, PolicyCIAVMP}

// ParsePolicy maps a raw identifier to a Policy. Matching is exact; anything else is PolicyUnknown.
func ParsePolicy(id string) Policy {
	switch id {
	case FirstFitID:
		return PolicyFirstFit
	case EnergyAwareID:
		return PolicyEnergyAware
	case CIAVMPID:
		return PolicyCIAVMP
	default:
		return PolicyUnknown
	}
}

// ID returns the identifier used in the summary file, or "" for PolicyUnknown.
func (p Policy) ID() string {
	switch p {
	case PolicyFirstFit:
		return FirstFitID
	case PolicyEnergyAware:
		return EnergyAwareID
	case PolicyCIAVMP:
		return CIAVMPID
	default:
		return ""
	}
}

// Label returns the display label shown on chart axes.
func (p Policy) Label() string {
	switch p {
	case PolicyFirstFit:
		return "First Fit"
	case PolicyEnergyAware:
		return "Energy Aware"
	case PolicyCIAVMP:
		return "CIAVMP"
	default:
		return "Unknown"
	}
}

func (p Policy) String() string {
	if p == PolicyUnknown {
		return "unknown"
	}
	return p.ID()
}

// UnknownPolicyMode selects how a LabelMapper treats unrecognized identifiers.
type UnknownPolicyMode string

const (
	// UnknownAsCIAVMP labels every unrecognized identifier "CIAVMP", as the original plots did.
	UnknownAsCIAVMP UnknownPolicyMode = "ciavmp"
	// UnknownAsRaw uses the raw identifier as its own label.
	UnknownAsRaw UnknownPolicyMode = "raw"
	// UnknownAsError fails the run on the first unrecognized identifier.
	UnknownAsError UnknownPolicyMode = "error"
)

// ParseUnknownPolicyMode validates a mode name from config or flags.
func ParseUnknownPolicyMode(s string) (UnknownPolicyMode, error) {
	switch m := UnknownPolicyMode(strings.ToLower(strings.TrimSpace(s))); m {
	case UnknownAsCIAVMP, UnknownAsRaw, UnknownAsError:
		return m, nil
	case "":
		return UnknownAsCIAVMP, nil
	default:
		return "", fmt.Errorf("invalid unknown-policy mode %q (use ciavmp, raw or error)", s)
	}
}

// LabelMapper turns policy identifiers into display labels.
type LabelMapper struct {
	Fallback UnknownPolicyMode
}

// Label returns the display label for id. Only UnknownAsError mode returns an error.
func (m LabelMapper) Label(id string) (string, error) {
	p := ParsePolicy(id)
	if p != PolicyUnknown {
		return p.Label(), nil
	}

	switch m.Fallback {
	case UnknownAsRaw:
		if id == "" {
			return "(empty)", nil
		}
		return id, nil
	case UnknownAsError:
		return "", &UnknownPolicyError{ID: id}
	default:
		return PolicyCIAVMP.Label(), nil
	}
}

// PolicyLabel is the total mapping used by the original charts: unrecognized identifiers become "CIAVMP".
func PolicyLabel(id string) string {
	label, _ := LabelMapper{Fallback: UnknownAsCIAVMP}.Label(id)
	return label
}
