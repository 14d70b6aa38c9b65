package codec

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/flowcal/wellobs/internal/obs"
)

// yamlDateLayout is the ISO date representation of the structured format.
const yamlDateLayout = "2006-01-02"

// smryGroup is the top-level group label of the structured format. All
// well summary vector observations live under it.
const smryGroup = "smry"

// YAML is the nested structured format: a top-level mapping from the
// group label to a list of {key, observations} objects, each observation
// an ordered {date, value, error} record.
//
// Values and error bounds are written as formatted decimal text, not
// native YAML floats, so the numeric representation is byte-identical to
// the flat format's and cannot drift through YAML float rendering.
type YAML struct{}

type yamlDocument struct {
	Smry []yamlGroup `yaml:"smry"`
}

type yamlGroup struct {
	Key          string            `yaml:"key"`
	Observations []yamlObservation `yaml:"observations"`
}

type yamlObservation struct {
	Date  string `yaml:"date"`
	Value string `yaml:"value"`
	Error string `yaml:"error"`
}

// Name implements Codec.
func (YAML) Name() string { return "yaml" }

// Extension implements Codec.
func (YAML) Extension() string { return "yamlobs" }

// Encode implements Codec.
func (YAML) Encode(w io.Writer, set *obs.Set) error {
	doc := yamlDocument{}
	for _, key := range set.Keys() {
		group := yamlGroup{Key: key.String()}
		for _, e := range set.Entries(key) {
			group.Observations = append(group.Observations, yamlObservation{
				Date:  e.Date.Format(yamlDateLayout),
				Value: formatFloat(e.Value),
				Error: formatFloat(e.Error),
			})
		}
		doc.Smry = append(doc.Smry, group)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("encoding yaml observations: %w", err)
	}
	return enc.Close()
}

// Decode implements Codec.
func (c YAML) Decode(r io.Reader) (*obs.Set, error) {
	var doc yamlDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true) // reject unknown fields, same strictness as the flat grammar
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			// An empty document is a legal export of an empty set.
			return obs.NewSet(), nil
		}
		return nil, fmt.Errorf("parsing yaml observations: %w", err)
	}

	set := obs.NewSet()
	for _, group := range doc.Smry {
		key, err := obs.ParseKey(group.Key)
		if err != nil {
			return nil, &MalformedRecordError{
				Format: c.Name(), Record: group.Key, Reason: "invalid observation key",
			}
		}
		for _, o := range group.Observations {
			date, err := time.ParseInLocation(yamlDateLayout, o.Date, time.UTC)
			if err != nil {
				return nil, &MalformedRecordError{
					Format: c.Name(), Record: o.Date, Reason: "invalid date",
				}
			}
			value, err := parseFloat(o.Value)
			if err != nil {
				return nil, &MalformedRecordError{
					Format: c.Name(), Record: o.Value, Reason: "invalid value",
				}
			}
			bound, err := parseFloat(o.Error)
			if err != nil {
				return nil, &MalformedRecordError{
					Format: c.Name(), Record: o.Error, Reason: "invalid error bound",
				}
			}
			entry := obs.Entry{Key: key, Date: date, Value: value, Error: bound}
			if err := set.Append(entry); err != nil {
				return nil, &MalformedRecordError{
					Format: c.Name(), Record: group.Key, Reason: err.Error(),
				}
			}
		}
	}
	return set, nil
}
