package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/spancheck/internal/span"
)

// Outcome encodes a parse outcome. A successful outcome's stream is drained.
func Outcome[R comparable](o span.Outcome[R]) ([]byte, error) {
	var buf bytes.Buffer

	if !o.OK() {
		buf.WriteString(`{"failure":`)
		if err := writeFailure(&buf, *o.Failure); err != nil {
			return nil, err
		}
		buf.WriteString(`,"ok":false}`)
		return buf.Bytes(), nil
	}

	var tokens []span.Token[R]
	if o.Tokens != nil {
		tokens = span.Drain(o.Tokens)
	}
	buf.WriteString(`{"ok":true,"tokens":`)
	if err := writeTokens(&buf, tokens); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Tokens encodes a token list as a JSON array.
func Tokens[R comparable](tokens []span.Token[R]) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTokens(&buf, tokens); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeTokens[R comparable](buf *bytes.Buffer, tokens []span.Token[R]) error {
	buf.WriteByte('[')
	for i, tok := range tokens {
		if i > 0 {
			buf.WriteByte(',')
		}
		kind := "start"
		if tok.Kind == span.End {
			kind = "end"
		}
		buf.WriteString(`{"kind":"` + kind + `","pos":`)
		buf.WriteString(strconv.Itoa(tok.Pos))
		buf.WriteString(`,"rule":`)
		if err := writeString(buf, fmt.Sprint(tok.Rule)); err != nil {
			return fmt.Errorf("token[%d]: %w", i, err)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return nil
}

func writeFailure[R comparable](buf *bytes.Buffer, f span.Failure[R]) error {
	buf.WriteString(`{"negatives":`)
	if err := writeRules(buf, f.Negatives); err != nil {
		return fmt.Errorf("negatives: %w", err)
	}
	buf.WriteString(`,"pos":`)
	buf.WriteString(strconv.Itoa(f.Pos))
	buf.WriteString(`,"positives":`)
	if err := writeRules(buf, f.Positives); err != nil {
		return fmt.Errorf("positives: %w", err)
	}
	buf.WriteByte('}')
	return nil
}

func writeRules[R comparable](buf *bytes.Buffer, rules []R) error {
	buf.WriteByte('[')
	for i, r := range rules {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeString(buf, fmt.Sprint(r)); err != nil {
			return fmt.Errorf("[%d]: %w", i, err)
		}
	}
	buf.WriteByte(']')
	return nil
}

// writeString writes s as a JSON string after NFC normalization.
func writeString(buf *bytes.Buffer, s string) error {
	var enc bytes.Buffer
	e := json.NewEncoder(&enc)
	e.SetEscapeHTML(false)
	if err := e.Encode(norm.NFC.String(s)); err != nil {
		return err
	}
	// json.Encoder adds a trailing newline.
	buf.Write(bytes.TrimSuffix(enc.Bytes(), []byte("\n")))
	return nil
}
