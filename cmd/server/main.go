package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/QuangTung97/crowdfund-admin/config"
	"github.com/QuangTung97/crowdfund-admin/pkg/contract"
	"github.com/QuangTung97/crowdfund-admin/pkg/grpclib"
	"github.com/QuangTung97/crowdfund-admin/pkg/otellib"
	"github.com/QuangTung97/crowdfund-admin/repository"
	"github.com/QuangTung97/crowdfund-admin/service/api"
	"github.com/QuangTung97/crowdfund-admin/service/campaign"
	"github.com/QuangTung97/crowdfund-admin/service/identity"
	"github.com/QuangTung97/crowdfund-admin/service/moderation"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/go-sql-driver/mysql"
	grpc_zap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpc_ctxtags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const serviceName = "crowdfund-admin"

func startServer() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)
	defer func() { _ = logger.Sync() }()

	tracerProvider, shutdown := otellib.InitOtel(serviceName, conf.Jaeger)
	defer shutdown()

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandler(grpclib.RecoveryHandlerFunc)),
			grpc_ctxtags.UnaryServerInterceptor(),
			grpc_prometheus.UnaryServerInterceptor,

			otelgrpc.UnaryServerInterceptor(otelgrpc.WithTracerProvider(tracerProvider)),
			otellib.SetTraceInfoInterceptor(logger),

			grpc_zap.UnaryServerInterceptor(logger),
		),
		grpc.ChainStreamInterceptor(
			grpc_recovery.StreamServerInterceptor(),
			grpc_ctxtags.StreamServerInterceptor(),
			grpc_prometheus.StreamServerInterceptor,
			grpc_zap.StreamServerInterceptor(logger),
		),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	grpc_prometheus.EnableHandlingTimeHistogram()
	grpc_prometheus.Register(grpcServer)

	handler := newAPIHandler(conf, logger, tracerProvider.Tracer(serviceName))

	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	startHTTPAndGRPCServers(conf, grpcServer, handler)
}

func newAPIHandler(conf config.Config, logger *zap.Logger, tracer trace.Tracer) http.Handler {
	policy, err := campaign.ParseBatchPolicy(conf.Query.BatchPolicy)
	if err != nil {
		panic(err)
	}

	db := conf.MySQL.MustConnect()
	provider := repository.NewProvider(db)
	auditLog := moderation.NewAuditLog(provider, repository.NewModerationLog(), logger)

	client := contract.NewRPCClient(conf.Contract.RPCURL, conf.Contract.Address, logger,
		contract.WithTimeout(conf.Contract.Timeout),
		contract.WithFrom(conf.Contract.From),
	)

	options := []campaign.Option{
		campaign.WithBatchPolicy(policy),
		campaign.WithDecimals(conf.Contract.Decimals),
		campaign.WithFetchConcurrency(conf.Query.FetchConcurrency),
		campaign.WithLogger(logger),
	}
	query := campaign.NewIServiceWrapper(campaign.NewService(client, options...), tracer, "campaign::")
	actions := campaign.NewActionsWrapper(campaign.NewActions(client, options...), tracer, "campaign::")

	metrics := moderation.NewMetrics()
	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		panic(err)
	}

	identityProvider := identity.NewProvider(conf.Admin)
	newController := func() *moderation.Controller {
		return moderation.NewController(query, actions, identityProvider,
			moderation.WithRecorder(auditLog),
			moderation.WithMetrics(metrics),
			moderation.WithLogger(logger),
		)
	}

	server := api.NewServer(query, newController(), newController, identityProvider, auditLog, logger)
	handler, err := server.Handler()
	if err != nil {
		panic(err)
	}
	return handler
}

func main() {
	rootCmd := cobra.Command{
		Use: "server",
	}
	rootCmd.AddCommand(
		startServerCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

func startServerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "start the server",
		Run: func(cmd *cobra.Command, args []string) {
			startServer()
		},
	}
}

func startHTTPAndGRPCServers(conf config.Config, grpcServer *grpc.Server, apiHandler http.Handler) {
	fmt.Println("GRPC:", conf.Server.GRPC.ListenString())
	fmt.Println("HTTP:", conf.Server.HTTP.ListenString())

	httpMux := http.NewServeMux()
	httpMux.Handle("/metrics", promhttp.Handler())
	httpMux.Handle("/", apiHandler)

	httpServer := &http.Server{
		Addr:              conf.Server.HTTP.ListenString(),
		Handler:           httpMux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			panic(err)
		}
		fmt.Println("Shutdown HTTP server successfully")
	}()

	go func() {
		defer wg.Done()

		listener, err := net.Listen("tcp", conf.Server.GRPC.ListenString())
		if err != nil {
			panic(err)
		}

		err = grpcServer.Serve(listener)
		if err != nil {
			panic(err)
		}
		fmt.Println("Shutdown gRPC server successfully")
	}()

	//--------------------------------
	// Graceful Shutdown
	//--------------------------------
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	grpcServer.GracefulStop()
	err := httpServer.Shutdown(ctx)
	if err != nil {
		panic(err)
	}

	wg.Wait()
}
