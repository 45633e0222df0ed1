package ban

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rogerio-castellano/store-api/internal/redissvc"
)

// Failed-login throttling. Each rejected login attempt counts a strike
// against a username|ip pair; reaching the limit within the window sets a
// temporary ban key checked before credentials are examined.
const (
	StrikeLimit  = 5
	StrikeWindow = 30 * time.Minute
	BanDuration  = 15 * time.Minute
)

const DailyBanLogKey = "login:banlog:daily"

var (
	rdb *redis.Client
	ctx context.Context
)

func SetRedisService(rs *redissvc.RedisService) {
	rdb = rs.Rdb()
	ctx = rs.Ctx()
}

type BanLogEntry struct {
	Target  string    `json:"target"`
	Route   string    `json:"route"`
	Strikes int       `json:"strikes"`
	Time    time.Time `json:"time"`
}

func strikeKey(target string) string {
	return "login:strikes:" + target
}

func banKey(target string) string {
	return "login:ban:" + target
}

// IsBanned reports whether target currently has an active ban. Without a
// configured redis client throttling is disabled.
func IsBanned(target string) bool {
	if rdb == nil {
		return false
	}
	n, err := rdb.Exists(ctx, banKey(target)).Result()
	if err != nil {
		log.Printf("ban lookup failed for %s: %v", target, err)
		return false
	}
	return n > 0
}

// RegisterFailure counts one failed attempt for target and returns true when
// the attempt triggered a ban.
func RegisterFailure(target, route string) bool {
	if rdb == nil {
		return false
	}

	strikes, err := rdb.Incr(ctx, strikeKey(target)).Result()
	if err != nil {
		log.Printf("strike increment failed for %s: %v", target, err)
		return false
	}
	if strikes == 1 {
		rdb.Expire(ctx, strikeKey(target), StrikeWindow)
	}

	if strikes < StrikeLimit {
		return false
	}

	if err := rdb.Set(ctx, banKey(target), strikes, BanDuration).Err(); err != nil {
		log.Printf("ban set failed for %s: %v", target, err)
		return false
	}
	rdb.Del(ctx, strikeKey(target))
	logBanEvent(target, route, int(strikes))
	return true
}

// ClearStrikes resets the counter after a successful login.
func ClearStrikes(target string) {
	if rdb == nil {
		return
	}
	rdb.Del(ctx, strikeKey(target))
}

func logBanEvent(target, route string, strikes int) {
	entry := BanLogEntry{
		Target:  target,
		Route:   route,
		Strikes: strikes,
		Time:    time.Now(),
	}
	data, _ := json.Marshal(entry)
	if err := rdb.RPush(ctx, DailyBanLogKey, data).Err(); err != nil {
		log.Printf("failed to append ban log entry: %v", err)
	}
	log.Printf("⚠️ ban: %s blocked on %s after %d strikes", target, route, strikes)
}

// StartDailyBanSummary periodically logs and drains the accumulated ban log.
func StartDailyBanSummary(interval time.Duration) {
	for {
		time.Sleep(interval)
		if rdb == nil {
			continue
		}

		entries, err := rdb.LRange(ctx, DailyBanLogKey, 0, -1).Result()
		if err != nil {
			log.Printf("failed to read ban log: %v", err)
			continue
		}
		if len(entries) == 0 {
			continue
		}

		summary := fmt.Sprintf("ban summary: %d bans in the last %s", len(entries), interval)
		for _, raw := range entries {
			var e BanLogEntry
			if err := json.Unmarshal([]byte(raw), &e); err == nil {
				summary += fmt.Sprintf("\n  %s on %s (%d strikes) at %s", e.Target, e.Route, e.Strikes, e.Time.Format(time.RFC3339))
			}
		}
		log.Println(summary)

		rdb.Del(ctx, DailyBanLogKey)
	}
}
