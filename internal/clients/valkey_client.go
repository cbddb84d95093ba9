// Package clients holds shared external service clients.
package clients

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/valkey-io/valkey-go"
)

var (
	valkeyInstance *ValkeyClient
	valkeyOnce     sync.Once
)

// ValkeyClient tracks which users have already been folded into a friend
// graph, so a re-run of a long collection skips completed work. Optional:
// jobs fall back to file-existence checks alone when it is not enabled.
type ValkeyClient struct {
	Client valkey.Client
}

const valkeyGraphedUsersKey = "graphs:completed_users"

// graphed-user marks expire after a week, long enough to span any re-run
const valkeyGraphedTTLSeconds = 7 * 24 * 60 * 60

func InitValkey() *ValkeyClient {
	valkeyOnce.Do(func() {
		valkeyAddr := os.Getenv("VALKEY_INIT_ADDRESS")
		valkeyPassword := os.Getenv("VALKEY_PASSWORD")
		useTLS := os.Getenv("VALKEY_TLS") == "true"

		opts := valkey.ClientOption{
			InitAddress: []string{
				valkeyAddr,
			},
			Password:         valkeyPassword,
			ConnWriteTimeout: 5 * time.Second,
			SelectDB:         0,
		}

		if useTLS {
			opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
		}

		client, err := valkey.NewClient(opts)
		if err != nil {
			panic(fmt.Errorf("[ValkeyClient] failed to create Valkey: %w", err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
		defer cancel()

		c := client.Do(ctx, client.B().Ping().Build())
		if c.Error() != nil {
			panic(fmt.Errorf("[ValkeyClient] failed to ping Valkey: %w", c.Error()))
		}

		slog.Info("[ValkeyClient] Successfully connected to valkey")

		valkeyInstance = &ValkeyClient{Client: client}
	})
	return valkeyInstance
}

func CloseValkey() {
	if valkeyInstance != nil {
		valkeyInstance.Client.Close()
	}
}

// MarkGraphed records that the user's friend list is in a finished graph.
func (vc *ValkeyClient) MarkGraphed(ctx context.Context, screenName string) error {
	completed := []valkey.Completed{
		vc.Client.B().Sadd().Key(valkeyGraphedUsersKey).Member(screenName).Build(),
		vc.Client.B().Expire().Key(valkeyGraphedUsersKey).Seconds(valkeyGraphedTTLSeconds).Build(),
	}

	for _, res := range vc.Client.DoMulti(ctx, completed...) {
		if err := res.Error(); err != nil {
			return fmt.Errorf("[ValkeyClient] failed to mark %s graphed: %w", screenName, err)
		}
	}
	return nil
}

// IsGraphed reports whether the user was already folded into a graph. Any
// lookup failure reads as "not graphed" so the job just redoes the work.
func (vc *ValkeyClient) IsGraphed(ctx context.Context, screenName string) bool {
	res := vc.Client.Do(ctx, vc.Client.B().Sismember().Key(valkeyGraphedUsersKey).Member(screenName).Build())
	ok, err := res.AsBool()
	if err != nil {
		return false
	}
	return ok
}
