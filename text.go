package frac

// MarshalText encodes f as its unreduced "n/d" form.
func (f Frac) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText accepts any form Parse accepts.
func (f *Frac) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
