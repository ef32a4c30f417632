package usecase

import (
	"golang.org/x/xerrors"

	"github.com/x-xyz/gallery/domain"
	"github.com/x-xyz/gallery/domain/collection"
	"github.com/x-xyz/gallery/domain/endpoint"
	"github.com/x-xyz/gallery/domain/metadata"
	"github.com/x-xyz/gallery/domain/token"
)

// BuildIndex makes one pass over the records. A token repeating a trait
// type is listed once under the attribute and once under each value.
// Duplicate token ids keep the first record.
func (u *metadataUseCase) BuildIndex(registry domain.Address, records []metadata.Record) *metadata.Index {
	idx := &metadata.Index{
		Tokens:     make(map[domain.TokenId]*token.CollectionToken, len(records)),
		TokenIds:   make([]domain.TokenId, 0, len(records)),
		Attributes: map[string]*metadata.AttributeIndex{},
	}
	registry = registry.ToLower()

	for _, r := range records {
		t := r.Token(registry)
		if _, ok := idx.Tokens[t.TokenId]; ok {
			continue
		}
		idx.Tokens[t.TokenId] = t
		idx.TokenIds = append(idx.TokenIds, t.TokenId)

		seenAttr := map[string]bool{}
		seenValue := map[string]map[string]bool{}
		for _, a := range t.Attributes {
			attr, ok := idx.Attributes[a.TraitType]
			if !ok {
				attr = &metadata.AttributeIndex{Values: map[string][]domain.TokenId{}}
				idx.Attributes[a.TraitType] = attr
				idx.AttributeNames = append(idx.AttributeNames, a.TraitType)
			}
			if !seenAttr[a.TraitType] {
				seenAttr[a.TraitType] = true
				seenValue[a.TraitType] = map[string]bool{}
				attr.TokenIds = append(attr.TokenIds, t.TokenId)
			}
			if seenValue[a.TraitType][a.Value] {
				continue
			}
			seenValue[a.TraitType][a.Value] = true
			if _, ok := attr.Values[a.Value]; !ok {
				attr.ValueNames = append(attr.ValueNames, a.Value)
			}
			attr.Values[a.Value] = append(attr.Values[a.Value], t.TokenId)
		}
	}

	return idx
}

func (u *metadataUseCase) Filter(idx *metadata.Index, filters []endpoint.FieldValueFilter) ([]domain.TokenId, error) {
	// per attribute, the union of the requested values
	matched := make([]map[domain.TokenId]bool, 0, len(filters))
	for _, f := range filters {
		attr, ok := idx.Attributes[f.FieldName]
		if !ok {
			return nil, xerrors.Errorf("unknown attribute %q: %w", f.FieldName, domain.ErrBadParamInput)
		}
		set := map[domain.TokenId]bool{}
		for _, v := range f.Values {
			for _, id := range attr.Values[v] {
				set[id] = true
			}
		}
		matched = append(matched, set)
	}

	res := []domain.TokenId{}
	for _, id := range idx.TokenIds {
		keep := true
		for _, set := range matched {
			if !set[id] {
				keep = false
				break
			}
		}
		if keep {
			res = append(res, id)
		}
	}
	return res, nil
}

func (u *metadataUseCase) Summarize(idx *metadata.Index) []collection.CollectionAttribute {
	res := make([]collection.CollectionAttribute, 0, len(idx.AttributeNames))
	for _, name := range idx.AttributeNames {
		attr := idx.Attributes[name]
		values := make([]collection.CollectionAttributeValue, 0, len(attr.ValueNames))
		for _, v := range attr.ValueNames {
			values = append(values, collection.CollectionAttributeValue{
				Value: v,
				Count: int64(len(attr.Values[v])),
			})
		}
		res = append(res, collection.CollectionAttribute{
			Name:   name,
			Values: values,
		})
	}
	return res
}
