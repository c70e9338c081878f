package factory

import "github.com/mitchellh/mapstructure"

// Decode fills out the provided object using json tags. It is the bridge
// between raw configuration maps and typed object fields, e.g. setting a
// kernel width from a --set flag or a config file.
func Decode(data map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "json", Result: out})
	if err != nil {
		return err
	}
	return dec.Decode(data)
}
