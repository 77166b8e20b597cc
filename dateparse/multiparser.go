package dateparse

// multiParser is an ambiguity group: a small set of matchers that accept
// the same input shape but disagree on field order, with at most one member
// flagged as the regionally conventional (preferred) reading.
type multiParser struct {
	matchers  []*matcher
	preferred *matcher // member of matchers, or nil
}

// multiParseResult reports the raw facts of evaluating one group: how many
// members matched, the preferred match if any, and every non-preferred
// match. The group itself resolves nothing.
type multiParseResult struct {
	count     int
	preferred *Temporal
	others    []Temporal
}

// result returns the match to carry forward: the preferred one when
// present, otherwise the last non-preferred match.
func (r multiParseResult) result() *Temporal {
	if r.preferred != nil {
		return r.preferred
	}
	if len(r.others) == 0 {
		return nil
	}
	return &r.others[len(r.others)-1]
}

// evaluate tries every member against the input. It deliberately never
// short-circuits: counting how many interpretations succeed is the point.
func (mp *multiParser) evaluate(input string) multiParseResult {
	var res multiParseResult
	for _, m := range mp.matchers {
		t, ok := m.tryMatch(input)
		if !ok {
			continue
		}
		res.count++
		if m == mp.preferred {
			v := t
			res.preferred = &v
		} else {
			res.others = append(res.others, t)
		}
	}
	return res
}

// allEqual reports whether every value in the list is field-equal to the
// first. An empty list is not considered equal; a single value is.
func allEqual(values []Temporal) bool {
	if len(values) == 0 {
		return false
	}
	for _, v := range values[1:] {
		if !values[0].Equal(v) {
			return false
		}
	}
	return true
}
