package line

import (
	"context"
	"fmt"
	"os"
	"sync"

	"fleetcare/internal/domain/entity"
	"fleetcare/internal/pkg/logger"

	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// Client wraps the linebot.Client and serves as the push channel provider.
type Client struct {
	*linebot.Client
	log logger.Logger
}

var (
	lineClientInstance *Client
	once               sync.Once
	initErr            error
)

// NewClient creates a new singleton instance of the LINE Bot client.
// It reads credentials from environment variables. An error is returned
// when credentials are missing so callers can run without the push channel.
func NewClient(log logger.Logger) (*Client, error) {
	once.Do(func() {
		channelSecret := os.Getenv("CHANNEL_SECRET")
		channelToken := os.Getenv("CHANNEL_ACCESS_TOKEN")

		if channelSecret == "" || channelToken == "" {
			initErr = fmt.Errorf("CHANNEL_SECRET and CHANNEL_ACCESS_TOKEN environment variables must be set")
			return
		}

		bot, err := linebot.New(channelSecret, channelToken)
		if err != nil {
			log.Error("🔴 ERROR: Failed to create LINE Bot client", err)
			initErr = err
			return
		}
		log.Info("Successfully created LINE Bot client.")
		lineClientInstance = &Client{
			Client: bot,
			log:    log,
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return lineClientInstance, nil
}

// Send delivers a notification as a LINE push message to the owning user.
// The user ID on the notification is the LINE user ID of the vehicle owner.
func (c *Client) Send(ctx context.Context, notification *entity.Notification) error {
	text := notification.Title
	if notification.Message != "" {
		text = fmt.Sprintf("%s\n%s", notification.Title, notification.Message)
	}
	_, err := c.PushMessage(notification.UserID, linebot.NewTextMessage(text)).WithContext(ctx).Do()
	if err != nil {
		return err
	}
	c.log.Debug(fmt.Sprintf("Pushed notification %d to user %s", notification.ID, notification.UserID))
	return nil
}
