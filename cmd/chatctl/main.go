package main

import (
	"chatroom/client"
	authority "chatroom/infrastructure/grpc/client"
	pbaccount "chatroom/proto/account"
	pbchat "chatroom/proto/chat"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const usage = `usage: chatctl <command>
  rooms                  list rooms
  create <room>          create a room (admin)
  delete <room>          delete a room (admin)
  send <room> <message>  post one message
  listen <room>          print the messages of a room until interrupted`

func main() {
	code, err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "chatctl: %v\n", err)
	}
	os.Exit(code)
}

type session struct {
	config  Config
	subject string
	rooms   pbchat.ChatRoomServiceClient
	stream  pbchat.ChatStreamServiceClient
}

func run(args []string) (int, error) {
	if len(args) == 0 {
		return exitConfig, errors.New(usage)
	}
	_ = godotenv.Load()
	config, err := LoadConfig()
	if err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	token, subject, err := login(ctx, config)
	if err != nil {
		return exitRuntime, err
	}

	conn, err := grpc.NewClient(config.ChatAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithPerRPCCredentials(client.NewTokenCredentials(token, true)))
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to server at %s: %w", config.ChatAddr, err)
	}
	defer func() { _ = conn.Close() }()

	s := session{
		config:  config,
		subject: subject,
		rooms:   pbchat.NewChatRoomServiceClient(conn),
		stream:  pbchat.NewChatStreamServiceClient(conn),
	}

	switch {
	case args[0] == "rooms":
		err = s.listRooms(ctx)
	case args[0] == "create" && len(args) == 2:
		err = s.createRoom(ctx, args[1])
	case args[0] == "delete" && len(args) == 2:
		err = s.deleteRoom(ctx, args[1])
	case args[0] == "send" && len(args) >= 3:
		err = s.send(ctx, args[1], strings.Join(args[2:], " "))
	case args[0] == "listen" && len(args) == 2:
		err = s.listen(ctx, args[1])
	default:
		return exitConfig, errors.New(usage)
	}
	if err != nil {
		return exitRuntime, err
	}
	return exitOK, nil
}

// login returns the token and the subject it was issued for.
// The subject is only read to recognise our own messages, the server verifies the token.
func login(ctx context.Context, config Config) (string, string, error) {
	conn, err := grpc.NewClient(config.AuthAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return "", "", fmt.Errorf("could not connect to authority at %s: %w", config.AuthAddr, err)
	}
	defer func() { _ = conn.Close() }()

	token, err := authority.NewAuthorityClient(pbaccount.NewAuthenticationServiceClient(conn)).
		Authenticate(ctx, config.Username, config.Password)
	if err != nil {
		return "", "", fmt.Errorf("login failed: %w", err)
	}

	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return "", "", fmt.Errorf("unreadable token: %w", err)
	}
	return token, claims.Subject, nil
}

func (s session) listRooms(ctx context.Context) error {
	stream, err := s.rooms.GetRooms(ctx, &emptypb.Empty{})
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Room"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for {
		room, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		table.Append([]string{room.GetName()})
	}
	table.Render()
	return nil
}

func (s session) createRoom(ctx context.Context, name string) error {
	room, err := s.rooms.CreateRoom(ctx, &pbchat.Room{Name: name})
	if err != nil {
		return err
	}
	fmt.Println(s.paint(color.FgGreen, "Room created: "+room.GetName()))
	return nil
}

func (s session) deleteRoom(ctx context.Context, name string) error {
	room, err := s.rooms.DeleteRoom(ctx, &pbchat.Room{Name: name})
	if err != nil {
		return err
	}
	fmt.Println(s.paint(color.FgYellow, "Room deleted: "+room.GetName()))
	return nil
}

// send posts one message then waits for its echo, or a notice, so the
// stream is not torn down before the server handled it.
func (s session) send(ctx context.Context, room, body string) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ListenTimeout)
	defer cancel()

	stream, err := s.stream.Chat(ctx)
	if err != nil {
		return err
	}
	if err := stream.Send(&pbchat.ChatMessage{Type: pbchat.MessageType_TEXT, RoomName: room, Message: body}); err != nil {
		return err
	}

	for {
		msg, err := stream.Recv()
		if err != nil {
			return err
		}
		if msg.GetFrom() == "" {
			fmt.Println(s.format(msg))
			break
		}
		if msg.GetFrom() == s.subject && msg.GetRoomName() == room {
			break
		}
	}
	return stream.CloseSend()
}

func (s session) listen(ctx context.Context, room string) error {
	stream, err := s.stream.Chat(ctx)
	if err != nil {
		return err
	}
	if err := stream.Send(&pbchat.ChatMessage{Type: pbchat.MessageType_JOIN, RoomName: room}); err != nil {
		return err
	}
	fmt.Println(s.paint(color.FgCyan, fmt.Sprintf(">>> Listening room %s (Ctrl+C to quit)...", room)))

	for {
		msg, err := stream.Recv()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("stream error: %w", err)
		}
		if client.ShouldDisplay(msg, room, s.subject) {
			fmt.Println(s.format(msg))
		}
	}
}

func (s session) format(msg *pbchat.ChatMessageFromServer) string {
	at := msg.GetTimestamp().AsTime().Local().Format(time.TimeOnly)
	switch {
	case msg.GetFrom() == "":
		return s.paint(color.FgRed, fmt.Sprintf("[%s] %s", at, msg.GetMessage()))
	case msg.GetType() == pbchat.MessageType_JOIN:
		return s.paint(color.FgGray, fmt.Sprintf("[%s] %s joined %s", at, msg.GetFrom(), msg.GetRoomName()))
	case msg.GetType() == pbchat.MessageType_LEAVE:
		return s.paint(color.FgGray, fmt.Sprintf("[%s] %s left %s", at, msg.GetFrom(), msg.GetRoomName()))
	default:
		return fmt.Sprintf("[%s] %s: %s", at, s.paint(color.FgBlue, msg.GetFrom()), msg.GetMessage())
	}
}

func (s session) paint(c color.Color, text string) string {
	if !s.config.Colours {
		return text
	}
	return color.New(c).Render(text)
}
