package shorthand

import (
	"github.com/yacobolo/cssom/internal/meta"
	"github.com/yacobolo/cssom/internal/token"
	"github.com/yacobolo/cssom/internal/value"
)

// layerSet collects the per-layer values of a layered shorthand, one list
// per longhand, aligned by layer index.
type layerSet struct {
	names []string
	lists map[string][]value.Value
}

func newLayerSet(names []string) *layerSet {
	return &layerSet{names: names, lists: make(map[string][]value.Value, len(names))}
}

// add appends one layer. Longhands the layer did not mention take their
// initial value.
func (l *layerSet) add(layer map[string][]token.Token) {
	for _, name := range l.names {
		var v value.Value
		if toks, ok := layer[name]; ok {
			v = value.FromTokens(toks)
		} else {
			v, _ = meta.Initial(name)
		}
		l.lists[name] = append(l.lists[name], v)
	}
}

func (l *layerSet) assign(s *setter) {
	for _, name := range l.names {
		s.set(name, value.NewList(l.lists[name]))
	}
}

// splitLayers cuts the run at commas; no layer may be empty.
func splitLayers(s *setter) ([][]token.Token, Result) {
	layers := token.Split(s.cur.Rest(), token.Comma)
	for _, layer := range layers {
		if len(layer) == 0 {
			return nil, s.fail(MalformedValue, "empty layer")
		}
	}
	return layers, OK
}

// layerCount returns the length of the longest list among names. A
// shorter list is repeated up to that length, the same way the cascade
// reuses it for the extra layers.
func layerCount(b *builder, names []string) int {
	n := 0
	for _, name := range names {
		n = max(n, b.value(name).Len())
	}
	return n
}

// layerItem returns layer i of v, repeating v when it is shorter.
func layerItem(v value.Value, i int) value.Value {
	return v.Item(i % v.Len())
}

const (
	animationDuration  = "animation-duration"
	animationTiming    = "animation-timing-function"
	animationDelay     = "animation-delay"
	animationIteration = "animation-iteration-count"
	animationDirection = "animation-direction"
	animationFillMode  = "animation-fill-mode"
	animationPlayState = "animation-play-state"
	animationName      = "animation-name"
	animationTimeline  = "animation-timeline"
)

// animationOrder is the precedence a token is offered to the longhands
// of a layer in: the first longhand still unset that accepts it wins.
var animationOrder = []string{
	animationDuration, animationTiming, animationDelay, animationIteration,
	animationDirection, animationFillMode, animationPlayState, animationName,
}

func isTimingFunction(property string, t token.Token) bool {
	return keyword(property, t) || t.IsFunction("cubic-bezier", "steps", "linear")
}

func acceptsAnimation(name string, t token.Token) bool {
	switch name {
	case animationDuration:
		return t.IsTime() && (t.IsMath() || t.IsNonNegative())
	case animationTiming:
		return isTimingFunction(name, t)
	case animationDelay:
		return t.IsTime()
	case animationIteration:
		return keyword(name, t) || isNonNegNumber(t)
	case animationName:
		return isCustomIdent(t) || t.Kind == token.String
	}
	return keyword(name, t)
}

// assignLayer offers every token of one layer to order.
func assignLayer(s *setter, toks []token.Token, order []string, accepts func(string, token.Token) bool) (map[string][]token.Token, Result) {
	layer := map[string][]token.Token{}
	cur := token.NewCursor(toks)
	for !cur.Done() {
		t, _ := cur.Next()
		placed := false
		for _, name := range order {
			if _, set := layer[name]; !set && accepts(name, t) {
				layer[name] = []token.Token{t}
				placed = true
				break
			}
		}
		if placed {
			continue
		}
		for _, name := range order {
			if accepts(name, t) {
				return nil, s.fail(UnassignedValue, "%q: %s is already set", t.String(), name)
			}
		}
		return nil, s.unexpected(t)
	}
	return layer, OK
}

func assignAnimation(s *setter) Result {
	layers, res := splitLayers(s)
	if res != OK {
		return res
	}
	set := newLayerSet(s.sh.Subproperties())
	for _, toks := range layers {
		layer, res := assignLayer(s, toks, animationOrder, acceptsAnimation)
		if res != OK {
			return res
		}
		set.add(layer)
	}
	set.assign(s)
	return OK
}

// clashes reports whether an identifier written for name would be read
// as a keyword of one of others.
func clashes(v value.Value, others []string) []string {
	t, ok := v.Single()
	if !ok || t.Kind != token.Ident {
		return nil
	}
	var out []string
	for _, other := range others {
		if meta.IsKnownIdentifier(other, t.Text) {
			out = append(out, other)
		}
	}
	return out
}

func buildAnimation(b *builder) ([]Fragment, Result) {
	n := layerCount(b, b.sh.Subproperties())

	var out []token.Token
	for i := 0; i < n; i++ {
		item := func(name string) value.Value {
			return layerItem(b.value(name), i)
		}
		if !meta.IsInitial(animationTimeline, item(animationTimeline)) {
			return nil, Decline
		}

		emit := map[string]bool{}
		for _, name := range animationOrder {
			emit[name] = !meta.IsInitial(name, item(name))
		}
		// A second time is a delay only after a duration
		if emit[animationDelay] {
			emit[animationDuration] = true
		}
		// A name spelled like a keyword must come after that keyword
		if emit[animationName] {
			for _, other := range clashes(item(animationName), animationOrder[:len(animationOrder)-1]) {
				emit[other] = true
			}
		}

		var layer []token.Token
		for _, name := range animationOrder {
			if emit[name] {
				layer = append(layer, item(name).Tokens()...)
			}
		}
		if len(layer) == 0 {
			layer = item(animationName).Tokens()
		}
		if i > 0 {
			out = append(out, token.Token{Kind: token.Comma, Text: ","})
		}
		out = append(out, layer...)
	}
	return b.single(out), OK
}

const (
	transitionProperty = "transition-property"
	transitionDuration = "transition-duration"
	transitionTiming   = "transition-timing-function"
	transitionDelay    = "transition-delay"
	transitionBehavior = "transition-behavior"
)

var transitionOrder = []string{
	transitionDuration, transitionTiming, transitionDelay, transitionBehavior, transitionProperty,
}

func acceptsTransition(name string, t token.Token) bool {
	switch name {
	case transitionDuration:
		return t.IsTime() && (t.IsMath() || t.IsNonNegative())
	case transitionTiming:
		return isTimingFunction(name, t)
	case transitionDelay:
		return t.IsTime()
	case transitionProperty:
		return isCustomIdent(t)
	}
	return keyword(name, t)
}

func assignTransition(s *setter) Result {
	layers, res := splitLayers(s)
	if res != OK {
		return res
	}
	set := newLayerSet(s.sh.Subproperties())
	for _, toks := range layers {
		layer, res := assignLayer(s, toks, transitionOrder, acceptsTransition)
		if res != OK {
			return res
		}
		if p, ok := layer[transitionProperty]; ok && len(layers) > 1 && p[0].IsIdent("none") {
			return s.fail(MalformedValue, "none is only valid in a single transition")
		}
		set.add(layer)
	}
	set.assign(s)
	return OK
}

func buildTransition(b *builder) ([]Fragment, Result) {
	n := layerCount(b, b.sh.Subproperties())

	order := []string{transitionProperty, transitionDuration, transitionTiming, transitionDelay, transitionBehavior}
	var out []token.Token
	for i := 0; i < n; i++ {
		item := func(name string) value.Value {
			return layerItem(b.value(name), i)
		}

		emit := map[string]bool{}
		for _, name := range order {
			emit[name] = !meta.IsInitial(name, item(name))
		}
		if emit[transitionDelay] {
			emit[transitionDuration] = true
		}

		var layer []token.Token
		for _, name := range order {
			if emit[name] {
				layer = append(layer, item(name).Tokens()...)
			}
		}
		if len(layer) == 0 {
			layer = item(transitionProperty).Tokens()
		}
		if i > 0 {
			out = append(out, token.Token{Kind: token.Comma, Text: ","})
		}
		out = append(out, layer...)
	}
	return b.single(out), OK
}

const (
	bgImage      = "background-image"
	bgPosition   = "background-position"
	bgSize       = "background-size"
	bgRepeat     = "background-repeat"
	bgAttachment = "background-attachment"
	bgOrigin     = "background-origin"
	bgClip       = "background-clip"
	bgColor      = "background-color"
)

var backgroundLayered = []string{bgImage, bgPosition, bgSize, bgRepeat, bgAttachment, bgOrigin, bgClip}

func isPositionToken(t token.Token) bool {
	return keyword(bgPosition, t) || t.IsLengthPercentage()
}

func isSizeToken(t token.Token) bool {
	return t.IsIdent("auto") || isNonNegLengthPercentage(t)
}

func assignBackground(s *setter) Result {
	layers, res := splitLayers(s)
	if res != OK {
		return res
	}
	set := newLayerSet(backgroundLayered)
	for i, toks := range layers {
		layer, res := readBackgroundLayer(s, toks, i == len(layers)-1)
		if res != OK {
			return res
		}
		set.add(layer)
	}
	set.assign(s)
	return OK
}

// readBackgroundLayer reads one layer. The color goes straight to the
// setter; it is only valid in the final layer.
func readBackgroundLayer(s *setter, toks []token.Token, final bool) (map[string][]token.Token, Result) {
	layer := map[string][]token.Token{}
	isSet := func(name string) bool {
		_, ok := layer[name]
		return ok
	}
	cur := token.NewCursor(toks)
	for !cur.Done() {
		t, _ := cur.Peek()
		switch {
		case !isSet(bgImage) && (isImage(t) || t.IsIdent("none")):
			cur.Advance()
			layer[bgImage] = []token.Token{t}
		case !isSet(bgPosition) && isPositionToken(t):
			var pos []token.Token
			for len(pos) < 4 {
				next, ok := cur.Peek()
				if !ok || !isPositionToken(next) {
					break
				}
				cur.Advance()
				pos = append(pos, next)
			}
			layer[bgPosition] = pos
			if next, ok := cur.Peek(); ok && next.Kind == token.Slash {
				cur.Advance()
				size, res := readBackgroundSize(s, cur)
				if res != OK {
					return nil, res
				}
				layer[bgSize] = size
			}
		case !isSet(bgRepeat) && keyword(bgRepeat, t):
			cur.Advance()
			repeat := []token.Token{t}
			if !t.IsIdent("repeat-x", "repeat-y") {
				if next, ok := cur.Peek(); ok && keyword(bgRepeat, next) && !next.IsIdent("repeat-x", "repeat-y") {
					cur.Advance()
					repeat = append(repeat, next)
				}
			}
			layer[bgRepeat] = repeat
		case !isSet(bgAttachment) && keyword(bgAttachment, t):
			cur.Advance()
			layer[bgAttachment] = []token.Token{t}
		case !isSet(bgOrigin) && keyword(bgOrigin, t):
			cur.Advance()
			layer[bgOrigin] = []token.Token{t}
		case !isSet(bgClip) && keyword(bgClip, t):
			cur.Advance()
			layer[bgClip] = []token.Token{t}
		case !s.isSet(bgColor) && isColor(t):
			if !final {
				return nil, s.fail(MalformedValue, "color is only valid in the final layer")
			}
			cur.Advance()
			s.setTokens(bgColor, t)
		default:
			return nil, s.unexpected(t)
		}
	}

	// One box keyword sets both boxes
	if origin, ok := layer[bgOrigin]; ok && !isSet(bgClip) {
		layer[bgClip] = origin
	}
	return layer, OK
}

func readBackgroundSize(s *setter, cur *token.Cursor) ([]token.Token, Result) {
	t, ok := cur.Next()
	switch {
	case !ok:
		return nil, s.fail(WrongValueCount, "missing background-size after '/'")
	case t.IsIdent("cover", "contain"):
		return []token.Token{t}, OK
	case !isSizeToken(t):
		return nil, s.unexpected(t)
	}
	size := []token.Token{t}
	if next, ok := cur.Peek(); ok && isSizeToken(next) {
		cur.Advance()
		size = append(size, next)
	}
	return size, OK
}

func buildBackground(b *builder) ([]Fragment, Result) {
	n := layerCount(b, backgroundLayered)
	color := b.value(bgColor)
	if color.IsList() {
		return nil, Decline
	}

	var out []token.Token
	for i := 0; i < n; i++ {
		item := func(name string) value.Value {
			return layerItem(b.value(name), i)
		}
		initial := func(name string) bool {
			return meta.IsInitial(name, item(name))
		}

		var layer []token.Token
		if !initial(bgImage) {
			layer = append(layer, item(bgImage).Tokens()...)
		}
		switch {
		case !initial(bgSize):
			layer = append(layer, item(bgPosition).Tokens()...)
			layer = append(layer, token.Token{Kind: token.Slash, Text: "/"})
			layer = append(layer, item(bgSize).Tokens()...)
		case !initial(bgPosition):
			layer = append(layer, item(bgPosition).Tokens()...)
		}
		for _, name := range []string{bgRepeat, bgAttachment} {
			if !initial(name) {
				layer = append(layer, item(name).Tokens()...)
			}
		}
		origin, clip := item(bgOrigin), item(bgClip)
		switch {
		case initial(bgOrigin) && initial(bgClip):
		case origin.Equal(clip):
			layer = append(layer, origin.Tokens()...)
		default:
			layer = append(layer, origin.Tokens()...)
			layer = append(layer, clip.Tokens()...)
		}
		if i == n-1 && !meta.IsInitial(bgColor, color) {
			layer = append(layer, color.Tokens()...)
		}
		if len(layer) == 0 {
			layer = []token.Token{token.NewIdent("none")}
		}
		if i > 0 {
			out = append(out, token.Token{Kind: token.Comma, Text: ","})
		}
		out = append(out, layer...)
	}
	return b.single(out), OK
}
