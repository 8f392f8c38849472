package ec2

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/smithy-go"

	"tasnim.dev/netlab/internal/cloud"
)

// Error codes that mean another resource still holds the target.
var dependencyCodes = map[string]bool{
	"DependencyViolation":             true,
	"InvalidNetworkInterface.InUse":   true,
	"InvalidGroup.InUse":              true,
	"ResourceInUse":                   true,
	"IncorrectState":                  true,
	"InvalidAttachment.InUse":         true,
	"InvalidInternetGateway.InUse":    true,
	"InvalidRouteTable.InUse":         true,
	"InvalidNetworkInterfaceID.InUse": true,
}

var transportCodes = map[string]bool{
	"RequestLimitExceeded":  true,
	"Throttling":            true,
	"ThrottlingException":   true,
	"InternalError":         true,
	"ServiceUnavailable":    true,
	"Unavailable":           true,
	"RequestExpired":        true,
	"AuthFailure":           true,
	"UnauthorizedOperation": true,
}

// classify wraps an SDK error so the cloud package predicates can tell
// not-found, still-referenced, transport and rejected failures apart.
func classify(op, resource string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}

	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return &cloud.TransientTransportError{Op: op, Err: err}
	}

	code := apiErr.ErrorCode()
	switch {
	case dependencyCodes[code]:
		return &cloud.RetryableDependencyError{ResourceID: resource, Err: fmt.Errorf("%s: %w", op, err)}
	case strings.HasSuffix(code, ".NotFound") || code == "Gateway.NotAttached":
		return fmt.Errorf("%s %s: %w: %w", op, resource, cloud.ErrNotFound, err)
	case transportCodes[code]:
		return &cloud.TransientTransportError{Op: op, Err: err}
	}
	return &cloud.RejectedError{Op: op, Code: code, Err: err}
}
