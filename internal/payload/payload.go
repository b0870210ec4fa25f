// Package payload formats HRC-20 operation intents into the canonical
// whitespace-free ASCII documents embedded in redeem scripts. Field order
// is fixed per operation (spec 4.3) and is never reordered for convenience,
// per the Design Notes' option-typed-field guidance: each operation walks
// its own explicit field list and emits only the fields that are present.
package payload

import (
	"fmt"
	"strings"
)

// Kind is the HRC-20 operation tag.
type Kind string

const (
	KindDeploy      Kind = "deploy"
	KindMint        Kind = "mint"
	KindTransfer    Kind = "transfer"
	KindBurn        Kind = "burn"
	KindList        Kind = "list"
	KindSend        Kind = "send"
	KindDeployIssue Kind = "deploy" // issue-mode deploy; distinguished by Operation.IsIssueMode
)

const protocolTag = "hrc-20"

// Operation is a tagged union over the HRC-20 operation variants. Only the
// fields relevant to Kind are read by Format; all optional fields are
// pointers so "absent" is distinguishable from "empty string".
type Operation struct {
	Kind Kind

	// deploy (tick-mode)
	Tick string
	Max  string
	Lim  string

	// deploy (issue-mode)
	Name string
	Mod  string

	// transfer / burn / list
	Amt string

	// mint / transfer / deploy
	To *string

	// deploy only
	Dec *string
	Pre *string

	// issue-mode deploy is selected by this flag rather than a separate
	// Kind, matching the single "deploy" wire tag both modes share.
	IsIssueMode bool
}

// Format serializes op into its canonical HRC-20 payload document.
func Format(op Operation) (string, error) {
	if err := validate(op); err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteByte('{')
	fields := fieldsFor(op)
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(fmt.Sprintf("%q:%q", f.key, f.value))
	}
	b.WriteByte('}')
	return b.String(), nil
}

type field struct {
	key   string
	value string
}

// validate enforces the required-field set per spec 4.3's table before
// Format walks the optional fields.
func validate(op Operation) error {
	switch {
	case op.Kind == KindDeploy && op.IsIssueMode:
		if op.Name == "" || op.Max == "" || op.Mod == "" {
			return fmt.Errorf("payload: deploy (issue-mode) requires name, max, mod")
		}
	case op.Kind == KindDeploy:
		if op.Tick == "" || op.Max == "" || op.Lim == "" {
			return fmt.Errorf("payload: deploy requires tick, max, lim")
		}
	case op.Kind == KindMint:
		if op.Tick == "" {
			return fmt.Errorf("payload: mint requires tick")
		}
	case op.Kind == KindTransfer:
		if op.Tick == "" || op.Amt == "" || op.To == nil {
			return fmt.Errorf("payload: transfer requires tick, amt, to")
		}
	case op.Kind == KindBurn:
		if op.Tick == "" || op.Amt == "" {
			return fmt.Errorf("payload: burn requires tick, amt")
		}
	case op.Kind == KindList:
		if op.Tick == "" || op.Amt == "" {
			return fmt.Errorf("payload: list requires tick, amt")
		}
	case op.Kind == KindSend:
		if op.Tick == "" {
			return fmt.Errorf("payload: send requires tick")
		}
	default:
		return fmt.Errorf("payload: unknown operation kind %q", op.Kind)
	}
	return nil
}

func fieldsFor(op Operation) []field {
	fields := []field{{"p", protocolTag}, {"op", string(op.Kind)}}

	switch {
	case op.Kind == KindDeploy && op.IsIssueMode:
		fields = append(fields, field{"name", op.Name}, field{"max", op.Max}, field{"mod", op.Mod})
		fields = appendOptional(fields, "to", op.To)
		fields = appendOptional(fields, "dec", op.Dec)
		fields = appendOptional(fields, "pre", op.Pre)
	case op.Kind == KindDeploy:
		fields = append(fields, field{"tick", op.Tick}, field{"max", op.Max}, field{"lim", op.Lim})
		fields = appendOptional(fields, "to", op.To)
		fields = appendOptional(fields, "dec", op.Dec)
		fields = appendOptional(fields, "pre", op.Pre)
	case op.Kind == KindMint:
		fields = append(fields, field{"tick", op.Tick})
		fields = appendOptional(fields, "to", op.To)
	case op.Kind == KindTransfer:
		fields = append(fields, field{"tick", op.Tick}, field{"amt", op.Amt})
		if op.To != nil {
			// transfer's "to" is required per the field table; it is still
			// modeled as *string because every operation shares one struct,
			// but Format rejects a transfer without it (validate) before
			// fieldsFor runs.
			fields = append(fields, field{"to", *op.To})
		}
	case op.Kind == KindBurn:
		fields = append(fields, field{"tick", op.Tick}, field{"amt", op.Amt})
	case op.Kind == KindList:
		fields = append(fields, field{"tick", strings.ToLower(op.Tick)}, field{"amt", op.Amt})
	case op.Kind == KindSend:
		fields = append(fields, field{"tick", strings.ToLower(op.Tick)})
	}
	return fields
}

func appendOptional(fields []field, key string, value *string) []field {
	if value == nil {
		return fields
	}
	return append(fields, field{key, *value})
}

// ParseOpField extracts the "op" value from a serialized HRC-20 payload
// document without a full JSON parse, used by fee estimation (spec 4.4)
// which only ever needs this one field. Returns ok=false if no "op" field
// is present.
func ParseOpField(payloadJSON string) (string, bool) {
	const marker = `"op":"`
	idx := strings.Index(payloadJSON, marker)
	if idx < 0 {
		return "", false
	}
	rest := payloadJSON[idx+len(marker):]
	end := strings.IndexByte(rest, '"')
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}
