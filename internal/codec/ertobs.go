package codec

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/flowcal/wellobs/internal/obs"
)

// ertDateLayout is the fixed DD/MM/YYYY date representation of the flat
// format.
const ertDateLayout = "02/01/2006"

// ERT is the flat grouped text format.
//
// Grammar, line oriented:
//
//	WOPR:A-1
//	01/11/2005 1001.5 50.075
//	01/12/2005 998.2 49.91
//
//	WBHP:A-1
//	01/11/2005 250 10
//
// A line with a single token opens a group named by that observation key;
// each following line carries exactly three whitespace-separated tokens
// (date, value, error) until a blank line or the next header. Group order
// is key insertion order, line order is date order.
type ERT struct{}

// Name implements Codec.
func (ERT) Name() string { return "ert" }

// Extension implements Codec.
func (ERT) Extension() string { return "ertobs" }

// Encode implements Codec.
func (ERT) Encode(w io.Writer, set *obs.Set) error {
	bw := bufio.NewWriter(w)
	for i, key := range set.Keys() {
		if i > 0 {
			if _, err := fmt.Fprintln(bw); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw, key.String()); err != nil {
			return err
		}
		for _, e := range set.Entries(key) {
			_, err := fmt.Fprintf(bw, "%s %s %s\n",
				e.Date.Format(ertDateLayout), formatFloat(e.Value), formatFloat(e.Error))
			if err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// Decode implements Codec.
func (c ERT) Decode(r io.Reader) (*obs.Set, error) {
	set := obs.NewSet()
	var current obs.Key
	haveKey := false

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			// Blank separator; the next header opens a new group.
			continue
		}

		tokens := strings.Fields(text)
		switch len(tokens) {
		case 1:
			key, err := obs.ParseKey(tokens[0])
			if err != nil {
				return nil, &MalformedRecordError{
					Format: c.Name(), Line: line, Record: text, Reason: "invalid group header",
				}
			}
			current = key
			haveKey = true

		case 3:
			if !haveKey {
				return nil, &MalformedRecordError{
					Format: c.Name(), Line: line, Record: text, Reason: "data line before any group header",
				}
			}
			date, err := time.ParseInLocation(ertDateLayout, tokens[0], time.UTC)
			if err != nil {
				return nil, &MalformedRecordError{
					Format: c.Name(), Line: line, Record: text, Reason: "invalid date",
				}
			}
			value, err := parseFloat(tokens[1])
			if err != nil {
				return nil, &MalformedRecordError{
					Format: c.Name(), Line: line, Record: text, Reason: "invalid value",
				}
			}
			bound, err := parseFloat(tokens[2])
			if err != nil {
				return nil, &MalformedRecordError{
					Format: c.Name(), Line: line, Record: text, Reason: "invalid error bound",
				}
			}
			entry := obs.Entry{Key: current, Date: date, Value: value, Error: bound}
			if err := set.Append(entry); err != nil {
				return nil, &MalformedRecordError{
					Format: c.Name(), Line: line, Record: text, Reason: err.Error(),
				}
			}

		default:
			return nil, &MalformedRecordError{
				Format: c.Name(), Line: line, Record: text,
				Reason: fmt.Sprintf("want 3 tokens (date value error), got %d", len(tokens)),
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading ert observations: %w", err)
	}
	return set, nil
}
