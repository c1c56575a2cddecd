package everyuuid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Convert maps a single line in either direction.
//
// A line that looks like an identifier is mapped to its base 10 index,
// anything else is parsed as an index and mapped to its identifier.
func Convert(line string) (string, error) {
	line = strings.TrimSpace(line)
	if looksLikeIdentifier(line) {
		index, err := IdentifierToIndex(line)
		if err != nil {
			return "", err
		}
		return index.String(), nil
	}
	index, err := ParseIndex(line)
	if err != nil {
		return "", err
	}
	return IndexToIdentifier(index)
}

// ConvertLines calls [Convert] for each non-empty line of a reader, passing
// the results to a handler.
//
// Conversion errors are passed to the handler rather than stopping the read;
// if the handler returns an error, reading stops and that error is returned.
func ConvertLines(r io.Reader, fn func(input, output string, err error) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		output, convertErr := Convert(input)
		if err := fn(input, output, convertErr); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("everyuuid; convert lines; cannot read input: %w", err)
	}
	return nil
}
