package main

import (
	"context"
	"io"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/simaogato/homedecide-backend/internal/adapter/cache"
	grpcadapter "github.com/simaogato/homedecide-backend/internal/adapter/grpc"
	"github.com/simaogato/homedecide-backend/internal/adapter/repository/csvfile"
	"github.com/simaogato/homedecide-backend/internal/adapter/repository/memory"
	"github.com/simaogato/homedecide-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/homedecide-backend/internal/adapter/repository/sqlite"
	"github.com/simaogato/homedecide-backend/internal/adapter/rest"
	"github.com/simaogato/homedecide-backend/internal/config"
	"github.com/simaogato/homedecide-backend/internal/domain"
	"github.com/simaogato/homedecide-backend/internal/usecase/projection"
	"github.com/simaogato/homedecide-backend/internal/usecase/rentlookup"
	"github.com/simaogato/homedecide-backend/internal/usecase/seeder"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.ReadConfig()
	if err != nil {
		log.Fatalf("read config: %s", err.Error())
	}
	ctx := context.Background()

	// 1. Setup rent storage
	rentRepo, closeRepo, err := openRentRepository(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to open rent storage: %v", err)
	}
	defer closeRepo()

	// 2. Seed rent data
	var observations []*domain.RentObservation
	if cfg.Rent.DataCSV != "" {
		observations, err = csvfile.Load(cfg.Rent.DataCSV)
		if err != nil {
			log.Fatalf("Failed to load rent data: %v", err)
		}
	}
	seeded, err := seeder.NewRentSeeder(rentRepo, observations).Seed(ctx)
	if err != nil {
		log.Fatalf("Failed to seed rent data: %v", err)
	}
	log.Printf("Rent data seeded successfully (%d new observations)", seeded)

	// 3. Setup projection cache
	projectionCache, closeCache := openCache(ctx, cfg.Cache)
	defer closeCache()

	// 4. Initialize Services (Use Cases)
	rentLookupService := rentlookup.NewRentLookupService(rentRepo)
	projectionService := projection.NewService(rentLookupService, projectionCache, cfg.Rent.DefaultMonthlyRent, cfg.Cache.TTL)

	// 5. Start gRPC Server
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(),
			grpcadapter.AuthInterceptor(cfg.Server.APIToken),
		),
	)
	grpcadapter.RegisterProjectionServiceServer(grpcServer, grpcadapter.NewServer(projectionService, rentLookupService))
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.GRPCPort)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", cfg.Server.GRPCPort, err)
	}

	go func() {
		log.Printf("gRPC server listening on %s", cfg.Server.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC server: %v", err)
		}
	}()

	// 6. Start HTTP Server
	limiter := rest.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Window)
	httpServer := rest.New(projectionService, rentLookupService, limiter)

	go func() {
		log.Printf("HTTP server listening on :%s", cfg.Server.HTTPPort)
		if err := httpServer.Start(ctx, cfg.Server.HTTPPort); err != nil {
			log.Fatalf("Failed to serve HTTP server: %v", err)
		}
	}()

	// Graceful shutdown
	waitForShutdown(grpcServer, httpServer)
}

func openRentRepository(ctx context.Context, cfg config.StorageConfig) (domain.RentRepository, func(), error) {
	switch cfg.Driver {
	case config.StoragePostgres:
		// Add 2-second delay to ensure Postgres is up (Simple retry)
		time.Sleep(2 * time.Second)

		db, err := postgres.NewDB(cfg.PostgresConnString())
		if err != nil {
			return nil, nil, err
		}
		if err := db.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return postgres.NewRentRepository(db), closer("postgres", db), nil
	case config.StorageSQLite:
		repo, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return repo, closer("sqlite", repo), nil
	default:
		return memory.NewRentRepository(), func() {}, nil
	}
}

func openCache(ctx context.Context, cfg config.CacheConfig) (domain.ProjectionCache, func()) {
	if cfg.RedisAddr == "" {
		log.Println("Using in-memory projection cache")
		return cache.NewMemoryCache(), func() {}
	}

	redisCache := cache.NewRedisCache(cfg.RedisAddr)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		log.Printf("Warning: redis at %s unreachable, projections will be recomputed until it is back: %v", cfg.RedisAddr, err)
	} else {
		log.Printf("Using redis projection cache at %s", cfg.RedisAddr)
	}
	return redisCache, closer("redis", redisCache)
}

func closer(name string, c io.Closer) func() {
	return func() {
		if err := c.Close(); err != nil {
			log.Printf("Warning: failed to close %s: %v", name, err)
		}
	}
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down both servers
func waitForShutdown(grpcServer *grpclib.Server, httpServer *rest.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Printf("Received signal: %v. Shutting down gracefully...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("Warning: HTTP shutdown: %v", err)
	}
	log.Println("HTTP server stopped")

	grpcServer.GracefulStop()
	log.Println("gRPC server stopped")
}
