package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/kelasbackend/forum-api/internal/repository"
	mysqlRepo "github.com/kelasbackend/forum-api/internal/repository/mysql"
	redisCache "github.com/kelasbackend/forum-api/internal/repository/redis"
	"github.com/kelasbackend/forum-api/internal/token"
	"github.com/kelasbackend/forum-api/internal/workers"

	"github.com/joho/godotenv"
	"github.com/kelasbackend/forum-api/internal/rest"
	"github.com/kelasbackend/forum-api/internal/rest/middleware"
	"github.com/kelasbackend/forum-api/internal/usecase/auth"
	"github.com/kelasbackend/forum-api/internal/usecase/comment"
	"github.com/kelasbackend/forum-api/internal/usecase/like"
	"github.com/kelasbackend/forum-api/internal/usecase/reply"
	"github.com/kelasbackend/forum-api/internal/usecase/thread"
	"github.com/kelasbackend/forum-api/internal/usecase/user"
)

const (
	defaultTimeout      = 30
	defaultAddress      = ":9090"
	defaultCacheDB      = 0
	defaultBloomBitSize = 10000000
	dbMaxRetry          = 10
	dbRetryIntervalSec  = 2

	defaultAccessTTLMinutes = 30
	defaultRefreshTTLHours  = 24 * 7
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func main() {
	//prepare database
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "Asia/Jakarta")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, err := db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	// prepare cache
	cacheHost := os.Getenv("CACHE_HOST")
	cachePort := os.Getenv("CACHE_PORT")
	cachePass := os.Getenv("CACHE_PASS")
	cacheDBStr := os.Getenv("CACHE_DB")
	cacheDB, err := strconv.Atoi(cacheDBStr)
	if err != nil {
		log.Println("failed to parse cacheDB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + cachePort,
		Password: cachePass,
		DB:       cacheDB,
	})
	defer func() {
		err = client.Close()
		if err != nil {
			log.Fatal("got error when closing the cache connection", err)
		}
	}()

	_, err = client.Ping(context.Background()).Result()
	if err != nil {
		log.Fatal("failed to open connection to cache", err)
		return
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	timeoutStr := os.Getenv("CONTEXT_TIMEOUT")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db)
	commentRepo := mysqlRepo.NewCommentRepository(db)
	replyRepo := mysqlRepo.NewReplyRepository(db)
	likeRepo := mysqlRepo.NewCommentLikeRepository(db)
	authRepo := mysqlRepo.NewAuthenticationRepository(db)

	// Thread相关的三层架构
	// 1. DB层
	threadDBRepo := mysqlRepo.NewThreadDBRepository(db)
	// 2. Cache层
	threadCache := redisCache.NewThreadCache(client)
	// 3. Repository协调层
	threadRepo := repository.NewThreadRepository(threadDBRepo, threadCache, userRepo, commentRepo, replyRepo, likeRepo)

	bloomBitSizeStr := os.Getenv("BLOOM_FILTER_SIZE")
	bloomBitSize, err := strconv.ParseUint(bloomBitSizeStr, 10, 64)
	if err != nil {
		log.Printf("failed to parse bloom bit size, using default size")
		bloomBitSize = defaultBloomBitSize
	}
	bloomRepo := redisCache.NewRedisBloomRepo(client, bloomBitSize)

	// Start worker
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	likesSyncer := workers.NewSyncLikesWorker(likeRepo, threadCache)
	go likesSyncer.Start(ctx)

	// Build service layer
	accessSecret := []byte(os.Getenv("ACCESS_TOKEN_SECRET"))
	refreshSecret := []byte(os.Getenv("REFRESH_TOKEN_SECRET"))
	accessTTL, err := strconv.Atoi(os.Getenv("ACCESS_TOKEN_TTL_MINUTES"))
	if err != nil {
		log.Println("failed to parse access token TTL, using default 30 minutes")
		accessTTL = defaultAccessTTLMinutes
	}
	refreshTTL, err := strconv.Atoi(os.Getenv("REFRESH_TOKEN_TTL_HOURS"))
	if err != nil {
		log.Println("failed to parse refresh token TTL, using default 7 days")
		refreshTTL = defaultRefreshTTLHours
	}
	tokenManager := token.NewJWTManager(
		accessSecret,
		refreshSecret,
		time.Duration(accessTTL)*time.Minute,
		time.Duration(refreshTTL)*time.Hour,
	)

	// usecase层只依赖repository接口和辅助服务
	userSvc := user.NewService(userRepo)
	authSvc := auth.NewService(userRepo, authRepo, tokenManager)
	threadSvc := thread.NewService(threadRepo, userRepo, bloomRepo)
	commentSvc := comment.NewService(commentRepo, threadRepo, bloomRepo)
	replySvc := reply.NewService(replyRepo, commentRepo, threadRepo, bloomRepo)
	likeSvc := like.NewService(likeRepo, commentRepo, threadRepo, bloomRepo, threadCache, likesSyncer)

	userHandler := rest.NewUserHandler(userSvc)
	authHandler := rest.NewAuthHandler(authSvc)
	threadHandler := rest.NewThreadHandler(threadSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)
	replyHandler := rest.NewReplyHandler(replySvc)
	likeHandler := rest.NewLikeHandler(likeSvc)

	authMiddleware := middleware.AuthMiddleware(string(accessSecret))

	// Prepare bloom filter
	if err := threadSvc.InitBloomFilter(ctx); err != nil {
		log.Printf("failed to init bloom filter: %v\n", err)
		return
	}

	// Register routes
	route.POST("/users", userHandler.Register)
	route.POST("/authentications", authHandler.Login)
	route.PUT("/authentications", authHandler.Refresh)
	route.DELETE("/authentications", authHandler.Logout)

	route.GET("/threads", threadHandler.Fetch)
	route.GET("/threads/:id", threadHandler.GetByID)

	authorized := route.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.POST("/threads", threadHandler.Store)
		authorized.POST("/threads/:id/comments", commentHandler.Store)
		authorized.DELETE("/threads/:id/comments/:commentId", commentHandler.Delete)
		authorized.POST("/threads/:id/comments/:commentId/replies", replyHandler.Store)
		authorized.DELETE("/threads/:id/comments/:commentId/replies/:replyId", replyHandler.Delete)
		authorized.PUT("/threads/:id/comments/:commentId/likes", likeHandler.Toggle)
	}

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Waiting for worker to cleanup...")
	time.Sleep(2 * time.Second)

	log.Println("Server exiting")
}
