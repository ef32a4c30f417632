package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/gallery/base/ctx"
	"github.com/x-xyz/gallery/base/ethereum"
	"github.com/x-xyz/gallery/base/log"
	"github.com/x-xyz/gallery/base/metrics"
	bValidator "github.com/x-xyz/gallery/base/validator"
	"github.com/x-xyz/gallery/domain"
	"github.com/x-xyz/gallery/domain/listing"
	mmiddleware "github.com/x-xyz/gallery/middleware"
	"github.com/x-xyz/gallery/service/cache"
	"github.com/x-xyz/gallery/service/cache/provider/primitive"
	"github.com/x-xyz/gallery/service/gallery"
	"github.com/x-xyz/gallery/service/looksrare"
	"github.com/x-xyz/gallery/service/marketplace"
	"github.com/x-xyz/gallery/service/opensea"
	gallery_delivery "github.com/x-xyz/gallery/stores/gallery/delivery/http"
	gallery_usecase "github.com/x-xyz/gallery/stores/gallery/usecase"
	globals_usecase "github.com/x-xyz/gallery/stores/globals/usecase"
	hc_delivery "github.com/x-xyz/gallery/stores/healthcheck/delivery/http"
	hc_usecase "github.com/x-xyz/gallery/stores/healthcheck/usecase"
	listing_delivery "github.com/x-xyz/gallery/stores/listing/delivery/http"
	listing_usecase "github.com/x-xyz/gallery/stores/listing/usecase"
	metadata_delivery "github.com/x-xyz/gallery/stores/metadata/delivery/http"
	metadata_usecase "github.com/x-xyz/gallery/stores/metadata/usecase"
	transfer_delivery "github.com/x-xyz/gallery/stores/transfer/delivery/http"
	transfer_usecase "github.com/x-xyz/gallery/stores/transfer/usecase"
)

func init() {
	pflag.String("config", "infra/configs/config.yaml", "path of the yaml config file")
	pflag.Parse()
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		panic(err)
	}

	viper.SetDefault("http.port", ":8080")
	viper.SetDefault("listing.cacheTtl", "30s")
	viper.SetDefault("listing.concurrency", 1)
	viper.SetDefault("globals.refreshInterval", "10m")
	viper.SetDefault("ethereum.maxConcurrency", 4)

	viper.SetConfigType("yaml")
	viper.SetConfigFile(viper.GetString("config"))
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if err := log.Configure(viper.GetBool(`debug`)); err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}

	if err := metrics.Configure(metrics.Cfg{
		Host: viper.GetString("datadog_host"),
		Port: viper.GetInt("datadog_port"),
	}); err != nil {
		panic(err)
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator()

	context := ctx.Background()
	registry := domain.Address(viper.GetString("collection.address")).ToLower()
	if !bValidator.IsValidAddress(string(registry)) {
		context.WithField("address", registry).Panic("invalid collection.address")
	}

	// gallery backend is optional, the bundled dataset is used without it
	var galleryClient gallery.Client
	if baseUrl := viper.GetString("gallery.baseUrl"); baseUrl != "" {
		galleryClient = gallery.NewClient(&gallery.ClientCfg{
			HttpClient: http.Client{},
			Timeout:    viper.GetDuration("gallery.timeout"),
			BaseURL:    baseUrl,
			ApiKey:     viper.GetString("gallery.apiKey"),
		})
	}

	// marketplaces
	concurrency := viper.GetInt("listing.concurrency")
	openseaClient := opensea.NewClient(&opensea.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    viper.GetDuration("opensea.timeout"),
		Apikey:     viper.GetString("opensea.apikey"),
		BaseURL:    viper.GetString("opensea.baseUrl"),
	})
	looksrareClient := looksrare.NewClient(&looksrare.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    viper.GetDuration("looksrare.timeout"),
		BaseURL:    viper.GetString("looksrare.baseUrl"),
	})
	marketplaces := []listing.Marketplace{
		marketplace.NewAggregator(opensea.NewAdapter(openseaClient), marketplace.WithConcurrency(concurrency)),
		marketplace.NewAggregator(looksrare.NewAdapter(looksrareClient), marketplace.WithConcurrency(concurrency)),
	}

	var listingCache cache.Service
	if ttl := viper.GetDuration("listing.cacheTtl"); ttl > 0 {
		listingCache = cache.New(cache.ServiceConfig{
			Ttl:   ttl,
			Pfx:   "gallery",
			Cache: primitive.NewPrimitive("listing", viper.GetInt("listing.cacheSizeMB")),
		})
	}

	// ethereum
	var blocks ethereum.BlockReader
	if rpcUrl := viper.GetString("ethereum.rpcUrl"); rpcUrl != "" {
		client, err := ethereum.Dial(rpcUrl, viper.GetInt("ethereum.maxConcurrency"))
		if err != nil {
			context.WithField("err", err).Warn("ethereum.Dial failed")
		} else {
			blocks = client
		}
	}
	signer, err := ethereum.NewKeySignerFromHex(viper.GetString("signer.privateKey"))
	if err != nil {
		context.WithField("err", err).Panic("invalid signer.privateKey")
	}
	signer.OnAccountsChanged(func(addrs []domain.Address) {
		context.WithField("accounts", addrs).Info("accounts changed")
	})

	// construct usecase and delivery
	metadata := metadata_usecase.NewMetadataUseCase(&metadata_usecase.MetadataUseCaseCfg{
		CtxTimeout: viper.GetDuration("metadata.timeout"),
	})
	globals := globals_usecase.NewStore(&globals_usecase.StoreCfg{
		Registry:      registry,
		Gallery:       galleryClient,
		Metadata:      metadata,
		DatasetSource: viper.GetString("metadata.file"),
	})
	if _, err := globals.Refresh(context); err != nil {
		context.WithField("err", err).Panic("globals.Refresh failed")
	}
	runCtx, stopRefresh := ctx.WithCancel(context)
	defer stopRefresh()
	if interval := viper.GetDuration("globals.refreshInterval"); interval > 0 {
		go globals.Run(runCtx, interval)
	} else {
		context.WithField("interval", interval.String()).Warn("globals.refreshInterval not positive, periodic refresh disabled")
	}

	listingUsecase := listing_usecase.NewListingUseCase(&listing_usecase.ListingUseCaseCfg{
		Marketplaces: marketplaces,
		Cache:        listingCache,
	})

	hc := hc_usecase.New(globals, blocks)

	hc_delivery.New(e, hc)
	listing_delivery.New(e, listingUsecase)
	metadata_delivery.New(e, globals, metadata)

	if galleryClient != nil {
		transfer_delivery.New(e, transfer_usecase.NewTransferUseCase(galleryClient))
		if blocks != nil {
			gallery_delivery.New(e, gallery_usecase.NewActionUseCase(&gallery_usecase.ActionUseCaseCfg{
				Client:  galleryClient,
				Account: signer,
				Blocks:  blocks,
			}))
		}
	}

	go func() {
		if err := e.Start(viper.GetString("http.port")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	stopRefresh()
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
	log.Sync()
}
