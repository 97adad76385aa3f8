package order

// ReplaceItems applies the normalizer's output to the draft. The model is
// trusted to return the complete intended list, so this is a full
// replacement, never a partial merge: candidates without a usable name are
// dropped first, and if nothing survives the draft is left untouched and
// ErrNoValidItems is returned.
func (o *Order) ReplaceItems(candidates []Item) error {
	valid := make([]Item, 0, len(candidates))
	for _, it := range candidates {
		if it.Valid() {
			valid = append(valid, it)
		}
	}
	if len(valid) == 0 {
		return ErrNoValidItems
	}
	o.Items = valid
	o.recalcTotal()
	return nil
}
