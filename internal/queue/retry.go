package queue

import (
	"time"

	"github.com/sethvargo/go-retry"
)

// RetryPolicy 消費失敗後的重試上限與間隔，memory 與 redis 隊列共用
type RetryPolicy struct {
	MaxRetryCount int           // 重試超過此次數視為毒藥消息並丟棄
	MinBackoff    time.Duration // 第一次重試前的等待時間
}

func defaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetryCount: 5,
		MinBackoff:    time.Second,
	}
}

// withDefaults 零值欄位補上預設
func (p RetryPolicy) withDefaults() RetryPolicy {
	d := defaultRetryPolicy()
	if p.MaxRetryCount > 0 {
		d.MaxRetryCount = p.MaxRetryCount
	}
	if p.MinBackoff > 0 {
		d.MinBackoff = p.MinBackoff
	}
	return d
}

// Exhausted 已重試 retries 次後是否該放棄
func (p RetryPolicy) Exhausted(retries int) bool {
	return retries >= p.MaxRetryCount
}

// Backoff 每則消息各自一份，指數成長，用完 MaxRetryCount 次後停止
func (p RetryPolicy) Backoff() retry.Backoff {
	return retry.WithMaxRetries(uint64(p.MaxRetryCount), retry.NewExponential(p.MinBackoff))
}
