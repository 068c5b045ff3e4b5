package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/arbifans/goapp/base/ctx"
	"github.com/arbifans/goapp/base/log"
	bValidator "github.com/arbifans/goapp/base/validator"
	"github.com/arbifans/goapp/domain"
	mmiddleware "github.com/arbifans/goapp/middleware"
	"github.com/arbifans/goapp/service/backend"
	"github.com/arbifans/goapp/service/localstore"
	"github.com/arbifans/goapp/service/pinata"
	"github.com/arbifans/goapp/service/wallet"
	asset_delivery "github.com/arbifans/goapp/stores/asset/delivery/http"
	asset_repository "github.com/arbifans/goapp/stores/asset/repository"
	asset_usecase "github.com/arbifans/goapp/stores/asset/usecase"
	content_delivery "github.com/arbifans/goapp/stores/content/delivery/http"
	content_repository "github.com/arbifans/goapp/stores/content/repository"
	content_usecase "github.com/arbifans/goapp/stores/content/usecase"
	creator_delivery "github.com/arbifans/goapp/stores/creator/delivery/http"
	creator_repository "github.com/arbifans/goapp/stores/creator/repository"
	creator_usecase "github.com/arbifans/goapp/stores/creator/usecase"
	file_usecase "github.com/arbifans/goapp/stores/file/usecase"
	payment_delivery "github.com/arbifans/goapp/stores/payment/delivery/http"
	payment_repository "github.com/arbifans/goapp/stores/payment/repository"
	payment_usecase "github.com/arbifans/goapp/stores/payment/usecase"
	unlock_repository "github.com/arbifans/goapp/stores/unlock/repository"
	unlock_usecase "github.com/arbifans/goapp/stores/unlock/usecase"
)

func init() {
	pflag.String("config", "configs/config.yaml", "config file path")
	pflag.Parse()
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		panic(err)
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(viper.GetString("config"))
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
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
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init local profile store
	context.Info("init localstore")
	store, err := localstore.New(context, viper.GetString("localstore.path"))
	if err != nil {
		panic(err)
	}

	// init backend client
	backendClient := backend.NewClient(&backend.ClientCfg{
		BaseUrl:    viper.GetString("backend.baseUrl"),
		HttpClient: http.Client{},
		Timeout:    viper.GetDuration("backend.timeout"),
	})

	// init wallet
	chainId := domain.ChainId(viper.GetInt32("network.chainId"))
	walletService, err := wallet.New(context, &wallet.Cfg{
		RpcUrl:     viper.GetString("network.rpcUrl"),
		PrivateKey: viper.GetString("wallet.privateKey"),
		ChainId:    chainId,
	})
	if err != nil {
		panic(err)
	}

	pinataService := pinata.New(viper.GetString("pinata.jwt"), viper.GetString("pinata.gateway"))

	httpTimeout := viper.GetDuration("http.timeout")

	// construct repository, usecase and delivery
	unlockRepo := unlock_repository.New(store)
	pendingRepo := payment_repository.NewPending(store)
	assetRepo := asset_repository.New(backendClient, viper.GetDuration("asset.cacheTtl"))
	creatorRepo := creator_repository.New(backendClient)

	unlockUC := unlock_usecase.New(unlockRepo)
	creatorUC := creator_usecase.New(creatorRepo, store)
	assetUC := asset_usecase.New(assetRepo, creatorUC, unlockUC)
	fileUC := file_usecase.New(pinataService)
	paymentUC := payment_usecase.New(&payment_usecase.Cfg{
		Backend:      backendClient,
		Wallet:       walletService,
		Unlock:       unlockUC,
		Pending:      pendingRepo,
		ChainId:      chainId,
		TokenAddress: domain.Address(viper.GetString("network.tokenAddress")).ToLower(),
	})

	var ipfsReader domain.WebResourceReaderRepository
	if nodeApi := viper.GetString("ipfs.nodeApi"); len(nodeApi) > 0 {
		ipfsReader = content_repository.NewIpfsNodeApiReaderRepo(ipfsapi.NewShell(nodeApi), httpTimeout)
	} else {
		ipfsReader = content_repository.NewIpfsGatewayReaderRepo(http.Client{}, viper.GetString("ipfs.gateway"), httpTimeout)
	}
	webResourceUC := content_usecase.NewWebResourceUseCase(&content_usecase.WebResourceUseCaseCfg{
		HttpReader:    content_repository.NewHttpReaderRepo(http.Client{}, httpTimeout, nil),
		IpfsReader:    ipfsReader,
		DataUriReader: content_repository.NewDataUriReaderRepo(),
	})

	asset_delivery.New(e, assetUC, fileUC)
	creator_delivery.New(e, creatorUC)
	payment_delivery.New(e, paymentUC)
	content_delivery.New(e, assetUC, webResourceUC)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	shutdownCtx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
