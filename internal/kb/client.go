// Package kb wraps the Bedrock knowledge-base retrieve-and-generate call.
// It is a standalone collaborator: none of the directory, availability,
// booking or search packages depend on it.
package kb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime/types"
)

const defaultModel = "anthropic.claude-3-sonnet-20240229-v1:0"

type Client struct {
	runtime *bedrockagentruntime.Client
	region  string
}

// Citation is one retrieval reference backing a generated answer.
type Citation struct {
	Text       string   `json:"text"`
	References []string `json:"references"`
}

// Answer is the result of a knowledge-base query.
type Answer struct {
	Text      string     `json:"answer"`
	Citations []Citation `json:"citations"`
	SessionID string     `json:"session_id"`
}

func NewClient(ctx context.Context, region string) (*Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return &Client{
		runtime: bedrockagentruntime.NewFromConfig(cfg),
		region:  region,
	}, nil
}

// Query sends a natural-language prompt against a knowledge base and returns
// the generated answer with its citations. modelArn may be empty, in which
// case a default Claude 3 Sonnet ARN for the client's region is used.
func (c *Client) Query(ctx context.Context, knowledgeBaseID, prompt, modelArn string) (*Answer, error) {
	if modelArn == "" {
		modelArn = fmt.Sprintf("arn:aws:bedrock:%s::foundation-model/%s", c.region, defaultModel)
	}

	resp, err := c.runtime.RetrieveAndGenerate(ctx, &bedrockagentruntime.RetrieveAndGenerateInput{
		Input: &types.RetrieveAndGenerateInput{
			Text: aws.String(prompt),
		},
		RetrieveAndGenerateConfiguration: &types.RetrieveAndGenerateConfiguration{
			Type: types.RetrieveAndGenerateTypeKnowledgeBase,
			KnowledgeBaseConfiguration: &types.KnowledgeBaseRetrieveAndGenerateConfiguration{
				KnowledgeBaseId: aws.String(knowledgeBaseID),
				ModelArn:        aws.String(modelArn),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("querying knowledge base %s: %w", knowledgeBaseID, err)
	}

	answer := &Answer{
		SessionID: aws.ToString(resp.SessionId),
	}
	if resp.Output != nil {
		answer.Text = aws.ToString(resp.Output.Text)
	}
	for _, citation := range resp.Citations {
		entry := Citation{}
		if citation.GeneratedResponsePart != nil && citation.GeneratedResponsePart.TextResponsePart != nil {
			entry.Text = aws.ToString(citation.GeneratedResponsePart.TextResponsePart.Text)
		}
		for _, ref := range citation.RetrievedReferences {
			if ref.Location != nil && ref.Location.S3Location != nil {
				entry.References = append(entry.References, aws.ToString(ref.Location.S3Location.Uri))
			}
		}
		answer.Citations = append(answer.Citations, entry)
	}
	return answer, nil
}
