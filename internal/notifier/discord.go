package notifier

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/gdg-garage/campus-events-api/internal/models"
)

type channelMessenger interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type DiscordNotifier struct {
	session   channelMessenger
	channelID string
}

func NewDiscordNotifier(botToken, channelID string) (*DiscordNotifier, error) {
	if botToken == "" {
		return nil, fmt.Errorf("discord bot token is empty")
	}
	if channelID == "" {
		return nil, fmt.Errorf("discord channel ID is empty")
	}
	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	return &DiscordNotifier{session: session, channelID: channelID}, nil
}

func (n *DiscordNotifier) send(message string) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if _, err := n.session.ChannelMessageSend(n.channelID, message); err != nil {
		return fmt.Errorf("send discord message: %w", err)
	}
	return nil
}

func (n *DiscordNotifier) NotifyEventCreated(_ context.Context, event models.Event, organizer models.User) error {
	return n.send(eventCreatedMessage(event, organizer))
}

func (n *DiscordNotifier) NotifyEventDeleted(_ context.Context, event models.Event) error {
	return n.send(fmt.Sprintf("🗑️ **Event Cancelled**\n**Event:** %s (%s)\n**Date:** %s", event.Name, event.Club, event.Date))
}

func (n *DiscordNotifier) NotifyRegistration(_ context.Context, user models.User, event models.Event, registration models.Registration) error {
	return n.send(fmt.Sprintf("🎟️ **New Registration**\n**Event:** %s\n**Student:** %s (%s)\n**Registered:** %s",
		event.Name,
		user.Name,
		user.RollNumber,
		registration.Timestamp.Format("2006-01-02 15:04"),
	))
}

func eventCreatedMessage(event models.Event, organizer models.User) string {
	laptop := ""
	if event.LaptopRequired {
		laptop = "\n💻 Bring your laptop"
	}
	return fmt.Sprintf("🎉 **New Event**\n**Event:** %s\n**Club:** %s\n**Domain:** %s\n**When:** %s, %s\n**Venue:** %s\n**Entry:** %s\n**Organizer:** %s%s",
		event.Name,
		event.Club,
		event.Domain,
		event.Date,
		event.Time,
		event.Venue,
		event.Pricing,
		organizer.Name,
		laptop,
	)
}
