package model

// Catalog is the immutable, ordered set of records loaded for a session.
type Catalog struct {
	records []Record
	keys    []string
}

// NewCatalog builds a catalog from records whose key lives at keyField.
// Records must already satisfy Validate(keyField).
func NewCatalog(records []Record, keyField int) *Catalog {
	owned := make([]Record, len(records))
	copy(owned, records)

	keys := make([]string, len(owned))
	for i, r := range owned {
		key, _ := r.Field(keyField)
		keys[i] = NormalizeKey(key)
	}

	return &Catalog{
		records: owned,
		keys:    keys,
	}
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Keys returns the normalized key of every record in catalog order.
// Records sharing a key contribute one entry each.
func (c *Catalog) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Lookup returns the first record whose normalized key equals key.
func (c *Catalog) Lookup(key string) (Record, bool) {
	for i, k := range c.keys {
		if k == key {
			return c.records[i], true
		}
	}
	return Record{}, false
}
