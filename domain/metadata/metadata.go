package metadata

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"

	"github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/domain"
	"github.com/x-xyz/gallery/domain/collection"
	"github.com/x-xyz/gallery/domain/endpoint"
	"github.com/x-xyz/gallery/domain/token"
)

// NoneValue stands in for a trait whose value is missing or empty
const NoneValue = "None"

// RecordId accepts both numeric and string token ids
type RecordId string

func (id *RecordId) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = RecordId(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return xerrors.Errorf("token id %s: %w", b, domain.ErrInvalidNumberFormat)
	}
	*id = RecordId(n.String())
	return nil
}

func (id *RecordId) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return xerrors.Errorf("token id at line %d: %w", node.Line, domain.ErrInvalidNumberFormat)
	}
	*id = RecordId(node.Value)
	return nil
}

type RecordAttribute struct {
	TraitType string      `json:"trait_type" yaml:"trait_type"`
	Value     interface{} `json:"value" yaml:"value"`
}

// NormalizedValue renders the value as a facet string, NoneValue when unset
func (a RecordAttribute) NormalizedValue() string {
	switch v := a.Value.(type) {
	case nil:
		return NoneValue
	case string:
		if strings.TrimSpace(v) == "" {
			return NoneValue
		}
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// Record is one entry of the bundled metadata file
type Record struct {
	Id          RecordId          `json:"id" yaml:"id"`
	Name        string            `json:"name" yaml:"name"`
	Description *string           `json:"description" yaml:"description"`
	Image       *string           `json:"image" yaml:"image"`
	ImageUrl    *string           `json:"image_url" yaml:"image_url"`
	FrameImage  *string           `json:"frame_image" yaml:"frame_image"`
	ResizeImage *string           `json:"resize_image" yaml:"resize_image"`
	Attributes  []RecordAttribute `json:"attributes" yaml:"attributes"`
}

// Token converts the record, falling back to image when image_url is unset
func (r Record) Token(registry domain.Address) *token.CollectionToken {
	imageUrl := r.ImageUrl
	if imageUrl == nil {
		imageUrl = r.Image
	}
	attrs := make([]token.TokenAttribute, len(r.Attributes))
	for i, a := range r.Attributes {
		attrs[i] = token.TokenAttribute{
			TraitType: a.TraitType,
			Value:     a.NormalizedValue(),
		}
	}
	return &token.CollectionToken{
		RegistryAddress:   registry,
		TokenId:           domain.TokenId(r.Id),
		Name:              r.Name,
		ImageUrl:          imageUrl,
		FrameImageUrl:     r.FrameImage,
		ResizableImageUrl: r.ResizeImage,
		Description:       r.Description,
		Attributes:        attrs,
	}
}

// Dataset is the collection metadata file shipped with the gallery
type Dataset struct {
	Address     domain.Address `json:"address" yaml:"address"`
	Name        *string        `json:"name" yaml:"name"`
	Description *string        `json:"description" yaml:"description"`
	ImageUrl    *string        `json:"imageUrl" yaml:"imageUrl"`
	Tokens      []Record       `json:"tokens" yaml:"tokens"`
}

// Collection is the dataset's own description of the collection
func (d Dataset) Collection() *collection.Collection {
	return &collection.Collection{
		Address:           d.Address.ToLower(),
		Name:              d.Name,
		Description:       d.Description,
		ImageUrl:          d.ImageUrl,
		DoesSupportErc721: true,
	}
}

type AttributeIndex struct {
	// TokenIds holds every token with any value for the attribute
	TokenIds   []domain.TokenId            `json:"tokenIds"`
	Values     map[string][]domain.TokenId `json:"values"`
	ValueNames []string                    `json:"valueNames"`
}

// Index is immutable once built. A rebuild makes a new one.
type Index struct {
	Tokens         map[domain.TokenId]*token.CollectionToken `json:"tokens"`
	TokenIds       []domain.TokenId                          `json:"tokenIds"`
	Attributes     map[string]*AttributeIndex                `json:"attributes"`
	AttributeNames []string                                  `json:"attributeNames"`
}

func (idx *Index) Token(id domain.TokenId) (*token.CollectionToken, bool) {
	t, ok := idx.Tokens[id]
	return t, ok
}

type Usecase interface {
	// LoadDataset reads a local JSON or YAML file, or fetches an https url
	LoadDataset(c ctx.Ctx, source string) (*Dataset, error)
	BuildIndex(registry domain.Address, records []Record) *Index
	// Filter ORs values of one attribute and ANDs attributes, in index order
	Filter(idx *Index, filters []endpoint.FieldValueFilter) ([]domain.TokenId, error)
	Summarize(idx *Index) []collection.CollectionAttribute
}
