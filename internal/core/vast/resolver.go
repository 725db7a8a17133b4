package vast

import (
	"github.com/beevik/etree"

	"vast-core/internal/core/domain"
)

const (
	inLineTag  = "InLine"
	wrapperTag = "Wrapper"
)

// adDetailRule resolves the InLine/Wrapper choice of an Ad. There is no
// precedence between the two: both present is always a conflict.
type adDetailRule struct{}

func (adDetailRule) bind(el *etree.Element, at scope, dst *domain.Ad) error {
	detail, err := resolveAdDetail(el, at)
	if err != nil {
		return err
	}
	dst.Detail = detail
	return nil
}

func resolveAdDetail(el *etree.Element, at scope) (domain.AdDetail, error) {
	var (
		inLine, wrapper *etree.Element
		inLines, wraps  int
	)
	for _, c := range el.ChildElements() {
		switch c.Tag {
		case inLineTag:
			inLine = c
			inLines++
		case wrapperTag:
			wrapper = c
			wraps++
		}
	}

	switch {
	case inLines+wraps == 0:
		return nil, &MissingMandatoryElementError{Path: at.path, Element: inLineTag + "|" + wrapperTag}
	case inLines+wraps > 1:
		return nil, &ConflictingVariantError{Path: at.path}
	case inLine != nil:
		v, err := inLineTable.bind(inLine, at.child(inLineTag))
		if err != nil {
			return nil, err
		}
		return &v, nil
	default:
		v, err := wrapperTable.bind(wrapper, at.child(wrapperTag))
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
}
