package main

import (
	"chatroom/auth"
	"chatroom/infrastructure/grpc/client"
	"chatroom/infrastructure/grpc/server"
	"chatroom/internal"
	"chatroom/moderation"
	pb "chatroom/proto/account"
	"chatroom/repositories"
	"chatroom/runtime"
	"chatroom/services"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Chat server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires the chat server and blocks until a signal or a serving error.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.ChatConfig
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}
	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Identity authority
	conn, err := grpc.NewClient(config.AuthorityAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return exitRuntime, fmt.Errorf("could not reach authority at %s: %w", config.AuthorityAddr, err)
	}
	defer func() {
		logger.Info("Closing authority connection...")
		_ = conn.Close()
	}()
	authority := client.NewAuthorityClient(pb.NewAuthenticationServiceClient(conn))
	gate := auth.NewGate(authority, config.AuthorityTimeout, logger)
	tokens := auth.NewTokenManager(config.JWTSecret, config.JWTIssuer, 0)
	authenticator := auth.NewAuthenticator(tokens, logger)

	// 3. Rooms & Hub
	rooms := repositories.NewRoomRepository()
	hub := runtime.NewHub(logger, runtime.NewRegistry(), rooms,
		config.ConnectionBufferSize, config.DeliveryTimeout)
	if words := internal.ParseCensoredWords(config.CensoredWords); len(words) > 0 {
		moderator, err := moderation.NewModerator(words, charReplacement, logger)
		if err != nil {
			return exitConfig, fmt.Errorf("moderation dictionary: %w", err)
		}
		hub.WithModerator(moderator)
	}

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. gRPC Server Setup
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	roomServer := server.NewRoomServer(logger, services.NewRoomService(gate, rooms, logger))
	chatStreamServer := server.NewChatStreamServer(logger, services.NewChatService(hub))
	s := server.NewChatGRPCServer(logger, authenticator, roomServer, chatStreamServer)

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		for serviceName := range s.GetServiceInfo() {
			logger.Debug("gRPC exposed services", "name", serviceName)
		}
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 6. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 7. Final Cleanup
	logger.Info("Shutting down gracefully...")
	// Open chat streams only end once their subscriber is closed
	hub.Close()
	s.GracefulStop()
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}
