package service

import (
	"context"
	"time"

	"airline-support-be/internal/constant"
	"airline-support-be/internal/dto"
	"airline-support-be/internal/entity"
	"airline-support-be/internal/pkg/logger"
	"airline-support-be/internal/repository/specification"
	"airline-support-be/internal/repository/unitofwork"

	"github.com/patrickmn/go-cache"
)

type IPolicyService interface {
	// GetPolicyByType returns the stored policy document for a type, or
	// nil when none is stored (the workflows then fall back to the
	// built-in text).
	GetPolicyByType(ctx context.Context, policyType string) (*entity.PolicyDocument, error)

	ListPolicies(ctx context.Context) ([]*dto.PolicyResponse, error)
	UpsertPolicy(ctx context.Context, req *dto.UpsertPolicyRequest) (*dto.PolicyResponse, error)

	// SeedDefaults stores the built-in policy texts for any type that has
	// no document yet. Idempotent.
	SeedDefaults(ctx context.Context) error
}

type policyService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *cache.Cache
	logger     logger.ILogger
}

func NewPolicyService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IPolicyService {
	// Policies change rarely; a short TTL keeps admin edits visible
	// without a read per turn.
	c := cache.New(5*time.Minute, 10*time.Minute)
	return &policyService{
		uowFactory: uowFactory,
		cache:      c,
		logger:     log,
	}
}

func (s *policyService) GetPolicyByType(ctx context.Context, policyType string) (*entity.PolicyDocument, error) {
	if x, found := s.cache.Get(policyType); found {
		return x.(*entity.PolicyDocument), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	policy, err := uow.PolicyRepository().FindOne(ctx, specification.ByPolicyType{PolicyType: policyType})
	if err != nil {
		return nil, err
	}
	if policy != nil {
		s.cache.Set(policyType, policy, cache.DefaultExpiration)
	}
	return policy, nil
}

func (s *policyService) ListPolicies(ctx context.Context) ([]*dto.PolicyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	policies, err := uow.PolicyRepository().FindAll(ctx, specification.OrderBy{Field: "policy_type"})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.PolicyResponse, len(policies))
	for i, p := range policies {
		res[i] = policyToResponse(p)
	}
	return res, nil
}

func (s *policyService) UpsertPolicy(ctx context.Context, req *dto.UpsertPolicyRequest) (*dto.PolicyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	policy, err := uow.PolicyRepository().FindOne(ctx, specification.ByPolicyType{PolicyType: req.PolicyType})
	if err != nil {
		return nil, err
	}

	if policy == nil {
		policy = &entity.PolicyDocument{
			PolicyType: req.PolicyType,
			Title:      req.Title,
			Content:    req.Content,
			SourceURL:  req.SourceURL,
			Metadata:   req.Metadata,
		}
		if err := uow.PolicyRepository().Create(ctx, policy); err != nil {
			return nil, err
		}
	} else {
		policy.Title = req.Title
		policy.Content = req.Content
		policy.SourceURL = req.SourceURL
		policy.Metadata = req.Metadata
		if err := uow.PolicyRepository().Update(ctx, policy); err != nil {
			return nil, err
		}
	}

	s.cache.Delete(req.PolicyType)

	return policyToResponse(policy), nil
}

func (s *policyService) SeedDefaults(ctx context.Context) error {
	defaults := []entity.PolicyDocument{
		{
			PolicyType: constant.PolicyTypeCancellation,
			Title:      "Cancellation Policy",
			Content:    constant.DefaultCancellationPolicyText,
		},
		{
			PolicyType: constant.PolicyTypePetTravel,
			Title:      "Pet Travel Policy",
			Content:    constant.DefaultPetTravelPolicyText,
			SourceURL:  "https://www.jetblue.com/traveling-together/traveling-with-pets",
		},
		{
			PolicyType: constant.PolicyTypeBaggage,
			Title:      "Baggage Allowance Policy",
			Content:    constant.DefaultBaggagePolicyText,
			SourceURL:  "https://www.airline.com/baggage",
		},
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	for i := range defaults {
		existing, err := uow.PolicyRepository().FindOne(ctx,
			specification.ByPolicyType{PolicyType: defaults[i].PolicyType})
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if err := uow.PolicyRepository().Create(ctx, &defaults[i]); err != nil {
			return err
		}
		s.logger.Info("policy", "seeded default policy", map[string]interface{}{
			"policy_type": defaults[i].PolicyType,
		})
	}
	return nil
}

func policyToResponse(p *entity.PolicyDocument) *dto.PolicyResponse {
	return &dto.PolicyResponse{
		Id:          p.Id,
		PolicyType:  p.PolicyType,
		Title:       p.Title,
		Content:     p.Content,
		SourceURL:   p.SourceURL,
		LastUpdated: p.LastUpdated,
	}
}
