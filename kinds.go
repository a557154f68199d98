package cssel

// Kind identifies which simple selector form a Selector was constructed as.
type Kind uint8

const (
	// KindNone is the kind of the zero Selector. It matches nothing and
	// serializes to the empty string.
	KindNone Kind = iota
	KindUniversal
	KindType
	KindClass
	KindID
	KindAttrAvailable
	KindAttrMatch
	KindAttrNotMatch
	KindAttrList
	KindAttrBegins
	KindAttrEnds
	KindAttrContains
	KindAttrHyphen
	KindPseudoClass
	KindPseudoElement
)

// kindInfo fixes the name and specificity weight of every selector kind.
// Constructors read their weight from this table so kind and weight cannot
// drift apart.
var kindInfo = [...]struct {
	name   string
	weight Specificity
}{
	KindNone:          {name: "none"},
	KindUniversal:     {name: "universal"},
	KindType:          {name: "type", weight: OneTag},
	KindClass:         {name: "class", weight: OneClass},
	KindID:            {name: "id", weight: OneID},
	KindAttrAvailable: {name: "attr-available", weight: OneClass},
	KindAttrMatch:     {name: "attr-match", weight: OneClass},
	KindAttrNotMatch:  {name: "attr-not-match", weight: OneClass},
	KindAttrList:      {name: "attr-list", weight: OneClass},
	KindAttrBegins:    {name: "attr-begins", weight: OneClass},
	KindAttrEnds:      {name: "attr-ends", weight: OneClass},
	KindAttrContains:  {name: "attr-contains", weight: OneClass},
	KindAttrHyphen:    {name: "attr-hyphen", weight: OneClass},
	KindPseudoClass:   {name: "pseudo-class", weight: OneClass},
	KindPseudoElement: {name: "pseudo-element", weight: OneTag},
}

func (k Kind) String() string {
	if int(k) >= len(kindInfo) {
		return "unknown"
	}
	return kindInfo[k].name
}

// weight is the specificity contributed by a matching selector of kind k.
func (k Kind) weight() Specificity {
	if int(k) >= len(kindInfo) {
		return Zero
	}
	return kindInfo[k].weight
}
