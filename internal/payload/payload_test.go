package payload

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestS1DeployPayloadFormatting(t *testing.T) {
	op := Operation{Kind: KindDeploy, Tick: "HOOS", Max: "2100000000000000", Lim: "100000000000"}
	out, err := Format(op)
	require.NoError(t, err)
	assert.Equal(t, `{"p":"hrc-20","op":"deploy","tick":"HOOS","max":"2100000000000000","lim":"100000000000"}`, out)
}

func TestS2MintWithRecipient(t *testing.T) {
	to := "hoosat:qz00"
	op := Operation{Kind: KindMint, Tick: "HOOS", To: &to}
	out, err := Format(op)
	require.NoError(t, err)
	assert.Equal(t, `{"p":"hrc-20","op":"mint","tick":"HOOS","to":"hoosat:qz00"}`, out)
}

func TestS3ListLowercasesTicker(t *testing.T) {
	op := Operation{Kind: KindList, Tick: "TEST", Amt: "292960000000"}
	out, err := Format(op)
	require.NoError(t, err)
	assert.Equal(t, `{"p":"hrc-20","op":"list","tick":"test","amt":"292960000000"}`, out)
}

func TestNoWhitespace(t *testing.T) {
	op := Operation{Kind: KindTransfer, Tick: "HOOS", Amt: "1", To: strPtr("hoosat:q")}
	out, err := Format(op)
	require.NoError(t, err)
	assert.False(t, strings.ContainsAny(out, " \t\n"))
}

func TestSendLowercasesTicker(t *testing.T) {
	op := Operation{Kind: KindSend, Tick: "MiXeD"}
	out, err := Format(op)
	require.NoError(t, err)
	assert.Equal(t, `{"p":"hrc-20","op":"send","tick":"mixed"}`, out)
}

func TestTransferPreservesCase(t *testing.T) {
	op := Operation{Kind: KindTransfer, Tick: "HoOs", Amt: "5", To: strPtr("hoosat:q")}
	out, err := Format(op)
	require.NoError(t, err)
	assert.Contains(t, out, `"tick":"HoOs"`)
}

func TestDecIsQuoted(t *testing.T) {
	dec := "8"
	op := Operation{Kind: KindDeploy, Tick: "HOOS", Max: "1", Lim: "1", Dec: &dec}
	out, err := Format(op)
	require.NoError(t, err)
	assert.Contains(t, out, `"dec":"8"`)
}

func TestDeployIssueModeFieldOrder(t *testing.T) {
	op := Operation{Kind: KindDeploy, IsIssueMode: true, Name: "Widget", Max: "100", Mod: "free"}
	out, err := Format(op)
	require.NoError(t, err)
	assert.Equal(t, `{"p":"hrc-20","op":"deploy","name":"Widget","max":"100","mod":"free"}`, out)
}

func TestTransferRequiresTo(t *testing.T) {
	op := Operation{Kind: KindTransfer, Tick: "HOOS", Amt: "1"}
	_, err := Format(op)
	require.Error(t, err)
}

func TestParseOpField(t *testing.T) {
	op, ok := ParseOpField(`{"p":"hrc-20","op":"transfer","tick":"x"}`)
	require.True(t, ok)
	assert.Equal(t, "transfer", op)

	_, ok = ParseOpField(`{"p":"hrc-20"}`)
	assert.False(t, ok)
}

func strPtr(s string) *string { return &s }
