package s3

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/gatekit/gatekit/core/assets"
)

// classifyError converts S3 errors to store errors. Missing objects and
// buckets both surface as assets.ErrNotFound so static routes answer 404;
// everything else keeps the original error for logging.
func classifyError(err error, key string) error {
	if err == nil {
		return nil
	}

	// Context errors pass through untouched for proper cancellation handling.
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return err
	}

	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return fmt.Errorf("%w: %q", assets.ErrNotFound, key)
	}

	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return fmt.Errorf("%w: %q", assets.ErrNotFound, key)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			return fmt.Errorf("%w: %q", assets.ErrNotFound, key)
		default:
			return fmt.Errorf("get asset %q failed (code: %s): %w", key, apiErr.ErrorCode(), err)
		}
	}

	return fmt.Errorf("get asset %q failed: %w", key, err)
}
