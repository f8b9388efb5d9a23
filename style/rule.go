package style

// Attribute is a keyed style value, optionally animated.
type Attribute struct {
	Key        string
	Value      Value
	Transition *Transition
}

// Attributes is an ordered attribute list with last-write-wins reads.
type Attributes []Attribute

// Get returns the last attribute set for key.
func (a Attributes) Get(key string) (Attribute, bool) {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i].Key == key {
			return a[i], true
		}
	}
	return Attribute{}, false
}

// Set appends, replacing an existing entry for the same key.
func (a *Attributes) Set(at Attribute) {
	for i := range *a {
		if (*a)[i].Key == at.Key {
			(*a)[i] = at
			return
		}
	}
	*a = append(*a, at)
}

// Rule is a selector with its declared attributes.
type Rule struct {
	Selector   Selector
	Attributes Attributes
}

// Sheet is an ordered rule table. Declaration order matters: among
// matches of equal specificity, the later rule wins.
type Sheet struct {
	rules []Rule
}

// NewSheet returns an empty sheet.
func NewSheet() *Sheet {
	return &Sheet{}
}

// Add appends a rule.
func (s *Sheet) Add(r Rule) {
	s.rules = append(s.rules, r)
}

// AddRule is a convenience for a parsed selector string.
func (s *Sheet) AddRule(selector string, attrs ...Attribute) bool {
	sel, ok := ParseSelector(selector)
	if !ok {
		return false
	}
	s.Add(Rule{Selector: sel, Attributes: attrs})
	return true
}

// Extend appends all rules of another sheet after this sheet's own, so
// the other sheet's rules win specificity ties.
func (s *Sheet) Extend(o *Sheet) {
	s.rules = append(s.rules, o.rules...)
}

// Len returns the rule count.
func (s *Sheet) Len() int {
	return len(s.rules)
}

// Rules returns the rules in declaration order.
func (s *Sheet) Rules() []Rule {
	return s.rules
}

// Resolve scans every rule whose selector matches the path for an
// attribute named key and returns the winner by specificity, later
// declarations winning ties.
func (s *Sheet) Resolve(path Path, key string) (Attribute, Specificity, bool) {
	var (
		best   Attribute
		bestSp Specificity
		found  bool
	)
	for i := range s.rules {
		r := &s.rules[i]
		at, ok := r.Attributes.Get(key)
		if !ok {
			continue
		}
		if !r.Selector.Matches(path) {
			continue
		}
		sp := r.Selector.Specificity()
		if !found || sp.Compare(bestSp) >= 0 {
			best, bestSp, found = at, sp, true
		}
	}
	return best, bestSp, found
}
