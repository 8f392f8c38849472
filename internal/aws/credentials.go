package aws

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"
	"golang.org/x/term"
)

// Prompter asks the operator for replacement credentials after cause made
// the current ones unusable. It returns io.EOF once input is exhausted.
type Prompter interface {
	PromptCredentials(ctx context.Context, cause error) (StaticCredentials, error)
}

// Verifier loads a session and re-prompts until STS accepts the credentials.
type Verifier struct {
	Profile string
	Region  string
	Prompt  Prompter

	// Seams for tests.
	load   func(ctx context.Context, profile, region string, static *StaticCredentials) (aws.Config, error)
	stsAPI func(cfg aws.Config) STSAPI
}

func NewVerifier(profile, region string, prompt Prompter) *Verifier {
	return &Verifier{
		Profile: profile,
		Region:  region,
		Prompt:  prompt,
		load:    LoadConfig,
		stsAPI:  func(cfg aws.Config) STSAPI { return sts.NewFromConfig(cfg) },
	}
}

// Authenticate returns a config whose credentials STS has accepted.
func (v *Verifier) Authenticate(ctx context.Context) (aws.Config, Identity, error) {
	var static *StaticCredentials
	for {
		cfg, id, err := v.try(ctx, static)
		if err == nil {
			return cfg, id, nil
		}
		if ctx.Err() != nil {
			return aws.Config{}, Identity{}, ctx.Err()
		}
		if v.Prompt == nil || !IsAuthError(err) {
			return aws.Config{}, Identity{}, err
		}

		creds, perr := v.Prompt.PromptCredentials(ctx, err)
		if perr != nil {
			return aws.Config{}, Identity{}, fmt.Errorf("%w (prompt: %w)", err, perr)
		}
		static = &creds
	}
}

func (v *Verifier) try(ctx context.Context, static *StaticCredentials) (aws.Config, Identity, error) {
	cfg, err := v.load(ctx, v.Profile, v.Region, static)
	if err != nil {
		return aws.Config{}, Identity{}, err
	}
	if err := HasCredentials(ctx, cfg); err != nil {
		return aws.Config{}, Identity{}, err
	}
	id, err := VerifyCredentials(ctx, v.stsAPI(cfg))
	if err != nil {
		return aws.Config{}, Identity{}, err
	}
	return cfg, id, nil
}

// authCodes are the STS codes that new credentials could fix.
var authCodes = map[string]bool{
	"InvalidClientTokenId":        true,
	"UnrecognizedClientException": true,
	"SignatureDoesNotMatch":       true,
	"IncompleteSignature":         true,
	"ExpiredToken":                true,
	"ExpiredTokenException":       true,
	"InvalidAccessKeyId":          true,
	"AccessDenied":                true,
	"AuthFailure":                 true,
}

// IsAuthError reports whether err means the credentials themselves are
// missing or refused. Network, throttling and endpoint failures are not.
func IsAuthError(err error) bool {
	if errors.Is(err, ErrNoCredentials) {
		return true
	}
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && authCodes[apiErr.ErrorCode()]
}

// TerminalPrompter reads credentials line by line. The secret is read without
// echo when In is a terminal.
type TerminalPrompter struct {
	in  io.Reader
	out io.Writer
	r   *bufio.Reader
}

func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{in: in, out: out, r: bufio.NewReader(in)}
}

func (p *TerminalPrompter) PromptCredentials(_ context.Context, cause error) (StaticCredentials, error) {
	fmt.Fprintf(p.out, "AWS credentials unusable: %v\n", cause)

	id, err := p.readLine("Access key ID: ")
	if err != nil {
		return StaticCredentials{}, err
	}
	secret, err := p.readSecret("Secret access key: ")
	if err != nil {
		return StaticCredentials{}, err
	}
	token, err := p.readLine("Session token (optional): ")
	if err != nil && !errors.Is(err, io.EOF) {
		return StaticCredentials{}, err
	}

	return StaticCredentials{AccessKeyID: id, SecretAccessKey: secret, SessionToken: token}, nil
}

func (p *TerminalPrompter) readLine(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.r.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return line, nil
}

func (p *TerminalPrompter) readSecret(label string) (string, error) {
	f, ok := p.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return p.readLine(label)
	}

	fmt.Fprint(p.out, label)
	b, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
