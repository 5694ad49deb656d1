package cssom

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/yacobolo/cssom/internal/meta"
	"github.com/yacobolo/cssom/internal/shorthand"
	"github.com/yacobolo/cssom/internal/token"
	"github.com/yacobolo/cssom/internal/value"
)

// Errors returned by SetProperty
var (
	ErrInvalidValue    = errors.New("invalid property value")
	ErrUnknownProperty = errors.New("unknown property")
)

type entry struct {
	value      value.Value
	important  bool
	generation uint64
}

// Declaration is a declaration block: an ordered set of longhand
// properties. Shorthands are split into longhands when set and rebuilt
// when read or serialized.
type Declaration struct {
	cfg Config
	log *zap.Logger

	entries map[string]*entry
	order   []string
	// generation is bumped by every longhand write
	generation uint64

	shorthands map[string]*ShorthandValue
	issues     []Issue
	errs       error
}

// NewDeclaration returns an empty declaration block.
func NewDeclaration(cfg Config) *Declaration {
	return &Declaration{
		cfg:        cfg,
		log:        cfg.logger().Named("declaration"),
		entries:    make(map[string]*entry),
		shorthands: make(map[string]*ShorthandValue),
	}
}

// SetProperty sets a longhand or shorthand property from its text. A
// trailing "!important" in text has the same effect as important. An
// empty text removes the property.
func (d *Declaration) SetProperty(name, text string, important bool) error {
	return d.setProperty(name, text, important, false)
}

// setCascaded applies one declaration read from a block. Unlike
// SetProperty, a normal declaration leaves alone the longhands an
// earlier declaration of the block made important.
func (d *Declaration) setCascaded(name, text string) error {
	return d.setProperty(name, text, false, true)
}

func (d *Declaration) setProperty(name, text string, important, cascade bool) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return fmt.Errorf("set property: %w", ErrUnknownProperty)
	}
	if strings.TrimSpace(text) == "" {
		d.RemoveProperty(name)
		return nil
	}

	toks, bang, err := token.Lex(text)
	if err != nil {
		d.report(shorthand.Problem{Kind: shorthand.MalformedValue, Property: name, Value: text, Message: err.Error()})
		return fmt.Errorf("%s: %w", name, ErrInvalidValue)
	}
	important = important || bang

	var store shorthand.Store = declStore{d}
	if cascade && !important {
		store = cascadeStore{declStore{d}}
	}

	sh, ok := meta.ByName(name)
	if !ok {
		if len(toks) == 0 {
			return fmt.Errorf("%s: %w", name, ErrInvalidValue)
		}
		store.Set(name, value.FromTokens(toks), important)
		d.prune()
		return nil
	}

	since := d.generation
	switch shorthand.Decompose(sh, toks, important, store, shorthand.SinkFunc(d.report), d.cfg.options()) {
	case shorthand.OK:
		d.log.Debug("shorthand decomposed", zap.String("property", name), zap.Int("longhands", len(sh.Longhands())))
	case shorthand.VendorEscape:
		pending := value.NewPending(name, toks)
		for _, longhand := range sh.Longhands() {
			store.Set(longhand, pending, important)
		}
		d.log.Debug("shorthand kept verbatim", zap.String("property", name), zap.String("value", pending.Text(false)))
	default:
		return fmt.Errorf("%s: %w", name, ErrInvalidValue)
	}

	if sv := newShorthandValue(d, sh, toks, important, since); len(sv.owned) > 0 {
		d.shorthands[name] = sv
	}
	d.prune()
	return nil
}

// GetPropertyValue returns the value of a longhand, or of a shorthand
// whose longhands can be written as that shorthand alone. It returns ""
// otherwise.
func (d *Declaration) GetPropertyValue(name string) string {
	name = strings.ToLower(name)
	if e, ok := d.entries[name]; ok {
		return e.value.Text(false)
	}
	sh, ok := meta.ByName(name)
	if !ok {
		return ""
	}
	return d.shorthandText(sh, false)
}

func (d *Declaration) shorthandText(sh meta.Shorthand, minify bool) string {
	subs := sh.Subproperties()
	first, ok := d.entries[subs[0]]
	if !ok {
		return ""
	}
	important := first.important
	for _, name := range subs {
		e, ok := d.entries[name]
		if !ok || e.important != important {
			return ""
		}
	}

	if first.value.IsPending() {
		if first.value.Owner() != sh.String() {
			return ""
		}
		for _, name := range subs {
			if !d.entries[name].value.Equal(first.value) {
				return ""
			}
		}
		return first.value.Text(minify)
	}

	built, res := shorthand.Build(sh, declStore{d}, subs, important, d.cfg.options())
	// The shorthand alone cannot stand for an extra it would reset
	if res != shorthand.OK || len(built.Deferred) > 0 || len(built.Fragments) != 1 || built.Fragments[0].Name != sh.String() {
		return ""
	}
	return built.Fragments[0].Text(minify)
}

// GetPropertyPriority returns "important" when the property, or every
// subproperty of a shorthand, is important.
func (d *Declaration) GetPropertyPriority(name string) string {
	name = strings.ToLower(name)
	if e, ok := d.entries[name]; ok {
		if e.important {
			return "important"
		}
		return ""
	}
	sh, ok := meta.ByName(name)
	if !ok {
		return ""
	}
	for _, sub := range sh.Subproperties() {
		e, ok := d.entries[sub]
		if !ok || !e.important {
			return ""
		}
	}
	return "important"
}

// RemoveProperty removes a longhand, or every longhand of a shorthand,
// and returns the value it had.
func (d *Declaration) RemoveProperty(name string) string {
	name = strings.ToLower(name)
	old := d.GetPropertyValue(name)

	names := []string{name}
	if sh, ok := meta.ByName(name); ok {
		names = sh.Longhands()
		delete(d.shorthands, name)
	}
	for _, n := range names {
		if _, ok := d.entries[n]; !ok {
			continue
		}
		delete(d.entries, n)
		d.order = slices.DeleteFunc(d.order, func(o string) bool { return o == n })
	}
	d.prune()
	return old
}

// Length returns the number of longhands.
func (d *Declaration) Length() int {
	return len(d.order)
}

// Item returns the i-th longhand name in declaration order, or "".
func (d *Declaration) Item(i int) string {
	if i < 0 || i >= len(d.order) {
		return ""
	}
	return d.order[i]
}

// CSSText serializes the block with shorthands folded back in.
func (d *Declaration) CSSText() string {
	return shorthand.Serialize(declStore{d}, d.order, false, d.cfg.options())
}

// MinifiedCSSText is CSSText without optional whitespace.
func (d *Declaration) MinifiedCSSText() string {
	return shorthand.Serialize(declStore{d}, d.order, true, d.cfg.options())
}

func (d *Declaration) declarations(minify bool) []shorthand.Declaration {
	return shorthand.Declarations(declStore{d}, d.order, minify, d.cfg.options())
}

// ShorthandValue returns the last value assigned to a shorthand while it
// still owns at least one longhand.
func (d *Declaration) ShorthandValue(name string) (*ShorthandValue, bool) {
	sv, ok := d.shorthands[strings.ToLower(name)]
	if !ok || !sv.Alive() {
		return nil, false
	}
	return sv, true
}

// Issues returns every problem reported while setting properties.
func (d *Declaration) Issues() []Issue {
	return d.issues
}

// Err combines the reported problems into one error, or returns nil.
func (d *Declaration) Err() error {
	return d.errs
}

func (d *Declaration) report(p shorthand.Problem) {
	d.log.Debug("invalid shorthand",
		zap.String("property", p.Property),
		zap.String("value", p.Value),
		zap.Stringer("kind", p.Kind),
		zap.String("message", p.Message),
	)
	d.issues = append(d.issues, Issue{
		FromLinter: linterName,
		Text:       fmt.Sprintf(IssueInvalidShorthand, p.Property, p.Kind.String()+": "+p.Message),
		Severity:   SeverityError,
	})
	d.errs = multierr.Append(d.errs, p)
}

// set writes one longhand. A rewritten longhand moves to the end.
func (d *Declaration) set(name string, v value.Value, important bool) {
	name = strings.ToLower(name)
	d.generation++
	if _, ok := d.entries[name]; ok {
		d.order = slices.DeleteFunc(d.order, func(o string) bool { return o == name })
	}
	d.order = append(d.order, name)
	d.entries[name] = &entry{value: v, important: important, generation: d.generation}
}

// prune drops shorthand values that own no longhand anymore.
func (d *Declaration) prune() {
	for name, sv := range d.shorthands {
		if !sv.Alive() {
			d.log.Debug("shorthand value dropped", zap.String("property", name))
			delete(d.shorthands, name)
		}
	}
}

// declStore exposes a Declaration to setters and builders.
type declStore struct {
	d *Declaration
}

func (s declStore) Set(name string, v value.Value, important bool) {
	s.d.set(name, v, important)
}

func (s declStore) Value(name string) (value.Value, bool) {
	e, ok := s.d.entries[strings.ToLower(name)]
	if !ok {
		return value.Value{}, false
	}
	return e.value, true
}

func (s declStore) IsImportant(name string) bool {
	e, ok := s.d.entries[strings.ToLower(name)]
	return ok && e.important
}

func (s declStore) IsDeclared(name string) bool {
	_, ok := s.d.entries[strings.ToLower(name)]
	return ok
}

// cascadeStore drops normal writes to longhands that are important.
type cascadeStore struct {
	declStore
}

func (s cascadeStore) Set(name string, v value.Value, important bool) {
	if !important && s.IsImportant(name) {
		s.d.log.Debug("normal declaration ignored", zap.String("property", name))
		return
	}
	s.declStore.Set(name, v, important)
}
