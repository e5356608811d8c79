package rekognition

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsrekognition "github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"github.com/aws/smithy-go"

	"github.com/drishti-ops/drishti/internal/domain"
	"github.com/drishti-ops/drishti/internal/gateway"
)

const (
	errCodeInvalidParameter = "InvalidParameterException"
	errCodeImageTooLarge    = "ImageTooLargeException"
	errCodeInvalidImage     = "InvalidImageFormatException"
)

// CompareFacesAPI is the subset of the Rekognition client the provider uses.
type CompareFacesAPI interface {
	CompareFaces(ctx context.Context, params *awsrekognition.CompareFacesInput, optFns ...func(*awsrekognition.Options)) (*awsrekognition.CompareFacesOutput, error)
}

// Provider runs the face-match capability on AWS Rekognition CompareFaces and
// delegates every other capability to a base gateway. Rekognition gives a
// deterministic similarity score where the generative model only estimates
// one, so operators can prefer it for missing-person sweeps.
type Provider struct {
	client CompareFacesAPI
	base   gateway.Gateway
	config Config
}

// NewProvider creates a Provider using the AWS default credential chain.
func NewProvider(ctx context.Context, cfg Config, base gateway.Gateway) (*Provider, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	return &Provider{
		client: awsrekognition.NewFromConfig(awsCfg),
		base:   base,
		config: cfg,
	}, nil
}

// NewProviderWithClient creates a Provider with an explicit client, used by
// tests.
func NewProviderWithClient(client CompareFacesAPI, cfg Config, base gateway.Gateway) *Provider {
	return &Provider{client: client, base: base, config: cfg}
}

// MatchFaces decodes both data-URI payloads and compares them with the
// CompareFaces API. The zone attribution is left empty: the orchestrator
// knows which zone's frame it submitted.
func (p *Provider) MatchFaces(ctx context.Context, req gateway.MatchFacesRequest) (*domain.MatchOutcome, error) {
	_, source, err := gateway.ParseDataURI(req.MissingPersonPhotoDataURI)
	if err != nil {
		return nil, err
	}
	_, target, err := gateway.ParseDataURI(req.CCTVFootageDataURI)
	if err != nil {
		return nil, err
	}

	input := &awsrekognition.CompareFacesInput{
		SourceImage:         &types.Image{Bytes: source},
		TargetImage:         &types.Image{Bytes: target},
		SimilarityThreshold: aws.Float32(p.config.SimilarityThreshold),
	}

	output, err := p.client.CompareFaces(ctx, input)
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			switch apiErr.ErrorCode() {
			case errCodeInvalidParameter, errCodeInvalidImage, errCodeImageTooLarge:
				return nil, domain.ErrInvalidImage.WithError(err)
			}
		}
		return nil, domain.ErrGateway.WithError(err)
	}

	outcome := &domain.MatchOutcome{MatchFound: false, Zone: "Unknown", ConfidenceScore: 0}
	for _, match := range output.FaceMatches {
		if match.Similarity == nil {
			continue
		}
		score := float64(*match.Similarity) / 100
		if score > outcome.ConfidenceScore {
			outcome.MatchFound = true
			outcome.Zone = ""
			outcome.ConfidenceScore = score
		}
	}
	return outcome, nil
}

func (p *Provider) DetectAnomalies(ctx context.Context, req gateway.DetectAnomaliesRequest) (*domain.AnomalyResult, error) {
	return p.base.DetectAnomalies(ctx, req)
}

func (p *Provider) AnalyzeCrowdDensity(ctx context.Context, req gateway.CrowdDensityRequest) (*gateway.CrowdDensityResult, error) {
	return p.base.AnalyzeCrowdDensity(ctx, req)
}

func (p *Provider) AnswerQuestion(ctx context.Context, question string) (string, error) {
	return p.base.AnswerQuestion(ctx, question)
}

func (p *Provider) SummarizeSafetyRisks(ctx context.Context, req gateway.SafetySummaryRequest) (string, error) {
	return p.base.SummarizeSafetyRisks(ctx, req)
}

var _ gateway.Gateway = (*Provider)(nil)
