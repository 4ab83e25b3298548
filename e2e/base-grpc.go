package e2e

import (
	"chatroom/auth"
	chatclient "chatroom/client"
	"chatroom/domain"
	"chatroom/infrastructure/grpc/client"
	"chatroom/infrastructure/grpc/server"
	pbaccount "chatroom/proto/account"
	pbchat "chatroom/proto/chat"
	"chatroom/proto/codec"
	"chatroom/repositories"
	"chatroom/runtime"
	"chatroom/services"
	"context"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const (
	jwtSecret  = "e2e-secret"
	bufSize    = 1024 * 1024
	bufnetAddr = "passthrough:///bufnet"

	AdminName     = "alice"
	AdminPassword = "alice-pwd"
	UserName      = "bob"
	UserPassword  = "bob-pwd"
)

// BaseGrpcSuite runs an authority and a chat server in process, over bufconn.
// Each test gets fresh servers, so rooms and users never leak between tests.
type BaseGrpcSuite struct {
	suite.Suite
	Config Config

	db          *badger.DB
	authGRPC    *grpc.Server
	authLis     *bufconn.Listener
	authorityCC *grpc.ClientConn
	chatGRPC    *grpc.Server
	chatLis     *bufconn.Listener
	clientConns []*grpc.ClientConn
	hub         *runtime.Hub
	Rooms       *repositories.RoomRepository
	Registry    *runtime.Registry
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseGrpcSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

func (s *BaseGrpcSuite) SetupTest() {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	tokens := auth.NewTokenManager(jwtSecret, auth.DefaultIssuer, time.Hour)

	// Authority
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	s.Require().NoError(err)
	s.db = db
	authService := services.NewAuthService(repositories.NewUserRepository(db), tokens, log)
	s.Require().NoError(authService.SeedUsers([]domain.UserSeed{
		{Username: AdminName, Password: AdminPassword, Roles: []string{domain.RoleAdmin}},
		{Username: UserName, Password: UserPassword},
	}))
	s.authLis = bufconn.Listen(bufSize)
	s.authGRPC = server.NewAuthGRPCServer(log, server.NewAuthServer(log, authService))
	go func() { _ = s.authGRPC.Serve(s.authLis) }()

	// Chat server
	s.authorityCC = s.dial(s.authLis)
	authority := client.NewAuthorityClient(pbaccount.NewAuthenticationServiceClient(s.authorityCC))
	gate := auth.NewGate(authority, s.Config.AuthorityTimeout, log)
	s.Rooms = repositories.NewRoomRepository()
	s.Registry = runtime.NewRegistry()
	s.hub = runtime.NewHub(log, s.Registry, s.Rooms, 128, s.Config.DeliveryTimeout)
	s.chatLis = bufconn.Listen(bufSize)
	s.chatGRPC = server.NewChatGRPCServer(log,
		auth.NewAuthenticator(auth.NewTokenManager(jwtSecret, auth.DefaultIssuer, 0), log),
		server.NewRoomServer(log, services.NewRoomService(gate, s.Rooms, log)),
		server.NewChatStreamServer(log, services.NewChatService(s.hub)))
	go func() { _ = s.chatGRPC.Serve(s.chatLis) }()
}

func (s *BaseGrpcSuite) TearDownTest() {
	for _, conn := range s.clientConns {
		_ = conn.Close()
	}
	s.clientConns = nil
	s.chatGRPC.Stop()
	_ = s.authorityCC.Close()
	s.authGRPC.Stop()
	_ = s.db.Close()
}

// Shutdown stops the chat server the way cmd/chat does on SIGTERM.
func (s *BaseGrpcSuite) Shutdown() {
	s.hub.Close()
	s.chatGRPC.GracefulStop()
}

// StopAuthority simulates an unreachable identity authority.
func (s *BaseGrpcSuite) StopAuthority() {
	s.authGRPC.Stop()
}

func (s *BaseGrpcSuite) dial(lis *bufconn.Listener, opts ...grpc.DialOption) *grpc.ClientConn {
	opts = append(opts,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	conn, err := grpc.NewClient(bufnetAddr, opts...)
	s.Require().NoError(err)
	return conn
}

// GrpcConn initializes a chat connection with logging, colors and JSON debugging.
// An empty token yields a connection that sends no credentials.
func (s *BaseGrpcSuite) GrpcConn(t *testing.T, name string, token string) *grpc.ClientConn {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)

	opts := []grpc.DialOption{
		grpc.WithUnaryInterceptor(func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
			start := time.Now()
			err := invoker(ctx, method, req, reply, cc, opts...)

			logBuilder := strings.Builder{}
			fmt.Fprintf(&logBuilder, "GRPC %s [%s] in %v", method, status.Code(err), time.Since(start))

			// Log full JSON request/response bodies if E2E_DEBUG_JSON is enabled
			if s.Config.DebugJSON {
				fmt.Fprintln(&logBuilder, "\nREQUEST:")
				fmt.Fprintln(&logBuilder, dump(req))
				if err != nil {
					fmt.Fprintln(&logBuilder, "ERROR:", err)
				} else {
					fmt.Fprintln(&logBuilder, "RESPONSE:")
					fmt.Fprintln(&logBuilder, dump(reply))
				}
			}
			t.Log(logBuilder.String())
			return err
		}),
	}
	if token != "" {
		opts = append(opts, grpc.WithPerRPCCredentials(chatclient.NewTokenCredentials(token, true)))
	}
	conn := s.dial(s.chatLis, opts...)
	s.clientConns = append(s.clientConns, conn)
	return conn
}

// Login authenticates against the authority and returns the token and its subject.
func (s *BaseGrpcSuite) Login(username, password string) (string, string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.Config.StepTimeout)
	defer cancel()

	resp, err := pbaccount.NewAuthenticationServiceClient(s.authorityCC).
		Authenticate(ctx, &pbaccount.AuthenticationRequest{Username: username, Password: password})
	s.Require().NoError(err)

	claims, err := auth.NewTokenManager(jwtSecret, auth.DefaultIssuer, 0).Validate(resp.GetToken())
	s.Require().NoError(err)
	return resp.GetToken(), claims.Subject
}

// WithRooms provides a ChatRoomService client within a contextual test step
func (s *BaseGrpcSuite) WithRooms(name, token string, fn func(ctx context.Context, client pbchat.ChatRoomServiceClient)) {
	conn := s.GrpcConn(s.T(), name, token)
	ctx, cancel := context.WithTimeout(context.Background(), s.Config.StepTimeout)
	defer cancel()

	fn(ctx, pbchat.NewChatRoomServiceClient(conn))
}

// WithStream provides a ChatStreamService client within a contextual test step
func (s *BaseGrpcSuite) WithStream(name, token string, fn func(ctx context.Context, client pbchat.ChatStreamServiceClient)) {
	conn := s.GrpcConn(s.T(), name, token)
	ctx, cancel := context.WithTimeout(context.Background(), s.Config.StepTimeout)
	defer cancel()

	fn(ctx, pbchat.NewChatStreamServiceClient(conn))
}

func dump(v any) string {
	data, err := codec.Codec{}.Marshal(v)
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	return string(data)
}
