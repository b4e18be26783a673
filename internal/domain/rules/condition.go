// Package rules evaluates declarative condition trees against a chart and
// its derived facts. Conditions are parsed and validated once at load time;
// evaluation never fails, it only matches or does not.
package rules

import (
	"encoding/json"
	"fmt"

	"github.com/okian/jyotish/internal/domain/model"
)

// Trigger records which entity satisfied a clause, with a snapshot of the
// fields that mattered. Triggers exist purely for audit and explanation.
type Trigger struct {
	EntityType string         `json:"entity_type"`
	EntityKey  string         `json:"entity_key"`
	Snapshot   map[string]any `json:"snapshot"`
}

// facts bundles the read-only inputs a clause matches against.
type facts struct {
	chart   model.KundaliChart
	derived model.DerivedAstrology
}

// Condition is one node of a parsed condition tree.
type Condition interface {
	// evaluate reports whether the node matches, with the triggers that
	// satisfied it. A false result always carries nil triggers.
	evaluate(f facts) (bool, []Trigger)
}

// allCondition matches when every clause matches. Evaluation short-circuits
// on the first failing clause and discards any triggers gathered so far.
type allCondition struct {
	clauses []Condition
}

func (c allCondition) evaluate(f facts) (bool, []Trigger) {
	var triggers []Trigger
	for _, clause := range c.clauses {
		ok, t := clause.evaluate(f)
		if !ok {
			return false, nil
		}
		triggers = append(triggers, t...)
	}
	return true, triggers
}

// anyCondition matches on the first matching clause; only that clause's
// triggers are kept.
type anyCondition struct {
	clauses []Condition
}

func (c anyCondition) evaluate(f facts) (bool, []Trigger) {
	for _, clause := range c.clauses {
		if ok, t := clause.evaluate(f); ok {
			return true, t
		}
	}
	return false, nil
}

// planetClause matches a natal planet, optionally pinned to a house or
// sign. A planet missing from the chart is a non-match, never an error.
type planetClause struct {
	planet model.Planet
	house  *int
	sign   *model.ZodiacSign
}

func (c planetClause) evaluate(f facts) (bool, []Trigger) {
	pos, ok := f.chart.Planets[c.planet]
	if !ok {
		return false, nil
	}
	if c.house != nil && pos.House != *c.house {
		return false, nil
	}
	if c.sign != nil && pos.Sign != *c.sign {
		return false, nil
	}
	return true, []Trigger{{
		EntityType: "planet",
		EntityKey:  c.planet.String(),
		Snapshot: map[string]any{
			"sign":       pos.Sign.String(),
			"house":      pos.House,
			"degree":     pos.Degree,
			"retrograde": pos.Retrograde,
		},
	}}
}

// houseClause matches a house, optionally requiring a strength label.
type houseClause struct {
	house    int
	strength *model.StrengthLabel
}

func (c houseClause) evaluate(f facts) (bool, []Trigger) {
	hs, ok := f.derived.HouseStrengths[c.house]
	if !ok {
		return false, nil
	}
	if c.strength != nil && hs.Strength != *c.strength {
		return false, nil
	}
	return true, []Trigger{{
		EntityType: "house",
		EntityKey:  fmt.Sprintf("house_%d", c.house),
		Snapshot: map[string]any{
			"strength": string(hs.Strength),
			"reasons":  hs.Reasons,
		},
	}}
}

// doshaClause matches a named dosha's presence. The derived facts list
// every known dosha with a presence flag, so a name absent from the list
// is unknown data and fails closed.
type doshaClause struct {
	name    string
	present bool
}

func (c doshaClause) evaluate(f facts) (bool, []Trigger) {
	for _, d := range f.derived.Doshas {
		if d.Name != c.name {
			continue
		}
		if d.Present != c.present {
			return false, nil
		}
		return true, []Trigger{{
			EntityType: "dosha",
			EntityKey:  d.Name,
			Snapshot: map[string]any{
				"present":     d.Present,
				"severity":    string(d.Severity),
				"description": d.Description,
			},
		}}
	}
	return false, nil
}

// rawNode is the JSON shape of a condition tree node: either a combinator
// ("all"/"any" with sub-nodes) or an atomic clause keyed by "entity".
type rawNode struct {
	All []json.RawMessage `json:"all"`
	Any []json.RawMessage `json:"any"`

	Entity   string  `json:"entity"`
	Name     string  `json:"name"`
	House    *int    `json:"house"`
	Sign     *string `json:"sign"`
	Strength *string `json:"strength"`
	Present  *bool   `json:"present"`
}

// ParseCondition turns a JSON condition tree into a validated Condition.
// Unknown entity types, out-of-range houses, and unknown names are
// rejected here rather than silently ignored at evaluation time.
func ParseCondition(data []byte) (Condition, error) {
	var node rawNode
	if err := json.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCondition, err)
	}
	return buildNode(node)
}

func buildNode(node rawNode) (Condition, error) {
	switch {
	case node.All != nil:
		clauses, err := buildClauses(node.All)
		if err != nil {
			return nil, err
		}
		return allCondition{clauses: clauses}, nil
	case node.Any != nil:
		clauses, err := buildClauses(node.Any)
		if err != nil {
			return nil, err
		}
		return anyCondition{clauses: clauses}, nil
	default:
		return buildAtomic(node)
	}
}

func buildClauses(raw []json.RawMessage) ([]Condition, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty clause list", ErrInvalidCondition)
	}
	out := make([]Condition, 0, len(raw))
	for _, r := range raw {
		c, err := ParseCondition(r)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func buildAtomic(node rawNode) (Condition, error) {
	switch node.Entity {
	case "planet":
		planet, err := model.ParsePlanet(node.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCondition, err)
		}
		clause := planetClause{planet: planet, house: node.House}
		if node.House != nil && (*node.House < 1 || *node.House > model.HouseCount) {
			return nil, fmt.Errorf("%w: house %d out of range", ErrInvalidCondition, *node.House)
		}
		if node.Sign != nil {
			sign, err := model.ParseSign(*node.Sign)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidCondition, err)
			}
			clause.sign = &sign
		}
		return clause, nil
	case "house":
		if node.House == nil {
			return nil, fmt.Errorf("%w: house clause without a house number", ErrInvalidCondition)
		}
		if *node.House < 1 || *node.House > model.HouseCount {
			return nil, fmt.Errorf("%w: house %d out of range", ErrInvalidCondition, *node.House)
		}
		clause := houseClause{house: *node.House}
		if node.Strength != nil {
			label := model.StrengthLabel(*node.Strength)
			switch label {
			case model.StrengthStrong, model.StrengthAverage, model.StrengthWeak:
			default:
				return nil, fmt.Errorf("%w: unknown strength %q", ErrInvalidCondition, *node.Strength)
			}
			clause.strength = &label
		}
		return clause, nil
	case "dosha":
		if node.Name == "" {
			return nil, fmt.Errorf("%w: dosha clause without a name", ErrInvalidCondition)
		}
		present := true
		if node.Present != nil {
			present = *node.Present
		}
		return doshaClause{name: node.Name, present: present}, nil
	case "":
		return nil, fmt.Errorf("%w: node is neither a combinator nor a clause", ErrInvalidCondition)
	default:
		return nil, fmt.Errorf("%w: unknown entity type %q", ErrInvalidCondition, node.Entity)
	}
}
