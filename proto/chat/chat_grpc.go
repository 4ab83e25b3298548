package chat

import (
	"context"

	"chatroom/proto/codec"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

const (
	ChatRoomService_CreateRoom_FullMethodName = "/chat.ChatRoomService/CreateRoom"
	ChatRoomService_DeleteRoom_FullMethodName = "/chat.ChatRoomService/DeleteRoom"
	ChatRoomService_GetRooms_FullMethodName   = "/chat.ChatRoomService/GetRooms"
	ChatStreamService_Chat_FullMethodName     = "/chat.ChatStreamService/Chat"
)

func callOptions(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.StaticMethod(), grpc.CallContentSubtype(codec.Name)}, opts...)
}

// ChatRoomServiceClient is the client API for ChatRoomService.
type ChatRoomServiceClient interface {
	CreateRoom(ctx context.Context, in *Room, opts ...grpc.CallOption) (*Room, error)
	DeleteRoom(ctx context.Context, in *Room, opts ...grpc.CallOption) (*Room, error)
	GetRooms(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Room], error)
}

type chatRoomServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewChatRoomServiceClient(cc grpc.ClientConnInterface) ChatRoomServiceClient {
	return &chatRoomServiceClient{cc}
}

func (c *chatRoomServiceClient) CreateRoom(ctx context.Context, in *Room, opts ...grpc.CallOption) (*Room, error) {
	out := new(Room)
	if err := c.cc.Invoke(ctx, ChatRoomService_CreateRoom_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chatRoomServiceClient) DeleteRoom(ctx context.Context, in *Room, opts ...grpc.CallOption) (*Room, error) {
	out := new(Room)
	if err := c.cc.Invoke(ctx, ChatRoomService_DeleteRoom_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chatRoomServiceClient) GetRooms(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Room], error) {
	stream, err := c.cc.NewStream(ctx, &ChatRoomService_ServiceDesc.Streams[0], ChatRoomService_GetRooms_FullMethodName, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[emptypb.Empty, Room]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type ChatRoomService_GetRoomsClient = grpc.ServerStreamingClient[Room]

// ChatRoomServiceServer is the server API for ChatRoomService.
type ChatRoomServiceServer interface {
	CreateRoom(context.Context, *Room) (*Room, error)
	DeleteRoom(context.Context, *Room) (*Room, error)
	GetRooms(*emptypb.Empty, grpc.ServerStreamingServer[Room]) error
	mustEmbedUnimplementedChatRoomServiceServer()
}

type UnimplementedChatRoomServiceServer struct{}

func (UnimplementedChatRoomServiceServer) CreateRoom(context.Context, *Room) (*Room, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateRoom not implemented")
}
func (UnimplementedChatRoomServiceServer) DeleteRoom(context.Context, *Room) (*Room, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteRoom not implemented")
}
func (UnimplementedChatRoomServiceServer) GetRooms(*emptypb.Empty, grpc.ServerStreamingServer[Room]) error {
	return status.Errorf(codes.Unimplemented, "method GetRooms not implemented")
}
func (UnimplementedChatRoomServiceServer) mustEmbedUnimplementedChatRoomServiceServer() {}

func RegisterChatRoomServiceServer(s grpc.ServiceRegistrar, srv ChatRoomServiceServer) {
	s.RegisterService(&ChatRoomService_ServiceDesc, srv)
}

func _ChatRoomService_CreateRoom_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Room)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatRoomServiceServer).CreateRoom(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ChatRoomService_CreateRoom_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChatRoomServiceServer).CreateRoom(ctx, req.(*Room))
	}
	return interceptor(ctx, in, info, handler)
}

func _ChatRoomService_DeleteRoom_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Room)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatRoomServiceServer).DeleteRoom(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ChatRoomService_DeleteRoom_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChatRoomServiceServer).DeleteRoom(ctx, req.(*Room))
	}
	return interceptor(ctx, in, info, handler)
}

type ChatRoomService_GetRoomsServer = grpc.ServerStreamingServer[Room]

func _ChatRoomService_GetRooms_Handler(srv any, stream grpc.ServerStream) error {
	m := new(emptypb.Empty)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ChatRoomServiceServer).GetRooms(m, &grpc.GenericServerStream[emptypb.Empty, Room]{ServerStream: stream})
}

var ChatRoomService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "chat.ChatRoomService",
	HandlerType: (*ChatRoomServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateRoom", Handler: _ChatRoomService_CreateRoom_Handler},
		{MethodName: "DeleteRoom", Handler: _ChatRoomService_DeleteRoom_Handler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "GetRooms", Handler: _ChatRoomService_GetRooms_Handler, ServerStreams: true},
	},
}

// ChatStreamServiceClient is the client API for ChatStreamService.
type ChatStreamServiceClient interface {
	Chat(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[ChatMessage, ChatMessageFromServer], error)
}

type chatStreamServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewChatStreamServiceClient(cc grpc.ClientConnInterface) ChatStreamServiceClient {
	return &chatStreamServiceClient{cc}
}

func (c *chatStreamServiceClient) Chat(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[ChatMessage, ChatMessageFromServer], error) {
	stream, err := c.cc.NewStream(ctx, &ChatStreamService_ServiceDesc.Streams[0], ChatStreamService_Chat_FullMethodName, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	return &grpc.GenericClientStream[ChatMessage, ChatMessageFromServer]{ClientStream: stream}, nil
}

type ChatStreamService_ChatClient = grpc.BidiStreamingClient[ChatMessage, ChatMessageFromServer]

// ChatStreamServiceServer is the server API for ChatStreamService.
type ChatStreamServiceServer interface {
	Chat(grpc.BidiStreamingServer[ChatMessage, ChatMessageFromServer]) error
	mustEmbedUnimplementedChatStreamServiceServer()
}

type UnimplementedChatStreamServiceServer struct{}

func (UnimplementedChatStreamServiceServer) Chat(grpc.BidiStreamingServer[ChatMessage, ChatMessageFromServer]) error {
	return status.Errorf(codes.Unimplemented, "method Chat not implemented")
}
func (UnimplementedChatStreamServiceServer) mustEmbedUnimplementedChatStreamServiceServer() {}

func RegisterChatStreamServiceServer(s grpc.ServiceRegistrar, srv ChatStreamServiceServer) {
	s.RegisterService(&ChatStreamService_ServiceDesc, srv)
}

func _ChatStreamService_Chat_Handler(srv any, stream grpc.ServerStream) error {
	return srv.(ChatStreamServiceServer).Chat(&grpc.GenericServerStream[ChatMessage, ChatMessageFromServer]{ServerStream: stream})
}

type ChatStreamService_ChatServer = grpc.BidiStreamingServer[ChatMessage, ChatMessageFromServer]

var ChatStreamService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "chat.ChatStreamService",
	HandlerType: (*ChatStreamServiceServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{StreamName: "Chat", Handler: _ChatStreamService_Chat_Handler, ServerStreams: true, ClientStreams: true},
	},
}
