// Package textio decodes raw listing bytes into text. Windows `tree`
// output is frequently GBK-encoded when captured from cmd.exe, so
// decoding tries UTF-8 first and falls back to GBK. The parsing core
// only ever sees decoded text.
package textio

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// ErrEmptyInput is returned when the input contains no bytes at all.
// Callers surface this distinctly from "no tree structure found".
var ErrEmptyInput = errors.New("textio: input is empty")

// Encoding names reported by Decode.
const (
	EncodingUTF8 = "utf-8"
	EncodingGBK  = "gbk"
)

// Decode converts raw listing bytes to a string, reporting the encoding
// that was used. Valid UTF-8 is passed through; anything else is
// decoded as GBK. A decode failure in the fallback is an error, not a
// silent mangling.
func Decode(raw []byte) (string, string, error) {
	if len(raw) == 0 {
		return "", "", ErrEmptyInput
	}

	if utf8.Valid(raw) {
		return string(raw), EncodingUTF8, nil
	}

	decoded, _, err := transform.Bytes(simplifiedchinese.GBK.NewDecoder(), raw)
	if err != nil {
		return "", "", fmt.Errorf("textio: decode as GBK: %w", err)
	}

	return string(decoded), EncodingGBK, nil
}
