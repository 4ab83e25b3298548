package services

import (
	"chatroom/domain"
	"chatroom/runtime"
	"context"
)

type IChatService interface {
	Join(identity domain.Identity) *runtime.Subscriber
	PostMessage(ctx context.Context, from *runtime.Subscriber, msg domain.ChatMessage)
	Leave(sub *runtime.Subscriber)
}

type ChatService struct {
	hub *runtime.Hub
}

func NewChatService(hub *runtime.Hub) *ChatService {
	return &ChatService{hub: hub}
}

func (s *ChatService) Join(identity domain.Identity) *runtime.Subscriber {
	return s.hub.Subscribe(identity)
}

func (s *ChatService) PostMessage(ctx context.Context, from *runtime.Subscriber, msg domain.ChatMessage) {
	s.hub.Publish(ctx, from, msg)
}

func (s *ChatService) Leave(sub *runtime.Subscriber) {
	s.hub.Unsubscribe(sub)
}
