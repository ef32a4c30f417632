package usecase

import (
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"

	bCtx "github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/base/httpclient"
	"github.com/x-xyz/gallery/base/log"
	"github.com/x-xyz/gallery/domain"
	"github.com/x-xyz/gallery/domain/metadata"
)

var (
	ErrInvalidJsonFormat = xerrors.Errorf("invalid JSON form")
	ErrUnsupportedSchema = xerrors.Errorf("unsupported schema")
)

type MetadataUseCaseCfg struct {
	// CtxTimeout bounds a remote fetch, 30s when zero
	CtxTimeout time.Duration
	HttpClient *http.Client
}

type metadataUseCase struct {
	http *httpclient.Client
}

func NewMetadataUseCase(cfg *MetadataUseCaseCfg) metadata.Usecase {
	hc := http.Client{}
	if cfg.HttpClient != nil {
		hc = *cfg.HttpClient
	}
	return &metadataUseCase{
		http: httpclient.New(httpclient.Cfg{
			HttpClient: hc,
			Timeout:    cfg.CtxTimeout,
			Name:       "metadata",
		}),
	}
}

func (u *metadataUseCase) LoadDataset(c bCtx.Ctx, source string) (*metadata.Dataset, error) {
	pUrl, err := url.Parse(source)
	if err != nil {
		c.WithFields(log.Fields{
			"source": source,
			"err":    err,
		}).Error("failed to parse source")
		return nil, err
	}

	var data []byte
	switch pUrl.Scheme {
	case "https":
		data, err = u.http.Do(c, http.MethodGet, source, nil)
	case "", "file":
		// file://rel/dir/x.json parses "rel" as the host
		data, err = os.ReadFile(path.Join(pUrl.Host, pUrl.Path))
	default:
		return nil, ErrUnsupportedSchema
	}
	if err != nil {
		c.WithFields(log.Fields{
			"schema": pUrl.Scheme,
			"source": source,
			"err":    err,
		}).Error("failed to read dataset")
		return nil, err
	}

	ds := &metadata.Dataset{}
	switch strings.ToLower(path.Ext(pUrl.Path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, ds)
	default:
		if !json.Valid(data) {
			c.WithField("source", source).Error("invalid json")
			return nil, ErrInvalidJsonFormat
		}
		err = json.Unmarshal(data, ds)
	}
	if err != nil {
		c.WithFields(log.Fields{
			"source": source,
			"err":    err,
		}).Error("failed to decode dataset")
		return nil, xerrors.Errorf("%v: %w", err, domain.ErrInvalidResource)
	}

	c.WithFields(log.Fields{
		"source": source,
		"tokens": len(ds.Tokens),
	}).Info("dataset loaded")

	return ds, nil
}
