package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-affiliate/internal/domain"
	"github.com/fsdevblog/groph-affiliate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-affiliate/pkg/uow"
)

// maxCodeAttempts предел повторных генераций кода при коллизии уникального индекса.
const maxCodeAttempts = 5

const dashboardInvitesLimit = 10

type ReferralService struct {
	uow         uow.UOW
	profileRepo AffiliateProfileRepository
	bindingRepo ReferralBindingRepository
	userRepo    UserRepository
	commRepo    CommissionRecordRepository
	payoutRepo  PayoutRequestRepository
	settingRepo PayoutSettingRepository
	audit       domain.AuditRecorder
}

func NewReferralService(u uow.UOW, audit domain.AuditRecorder) (*ReferralService, error) {
	profileRepo, err := uow.GetRepositoryAs[AffiliateProfileRepository](u, uow.RepositoryName(repoargs.ProfileRepoName))
	if err != nil {
		return nil, err
	}
	bindingRepo, err := uow.GetRepositoryAs[ReferralBindingRepository](u, uow.RepositoryName(repoargs.BindingRepoName))
	if err != nil {
		return nil, err
	}
	userRepo, err := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return nil, err
	}
	commRepo, err := uow.GetRepositoryAs[CommissionRecordRepository](u, uow.RepositoryName(repoargs.CommissionRepoName))
	if err != nil {
		return nil, err
	}
	payoutRepo, err := uow.GetRepositoryAs[PayoutRequestRepository](u, uow.RepositoryName(repoargs.PayoutRequestRepoName))
	if err != nil {
		return nil, err
	}
	settingRepo, err := uow.GetRepositoryAs[PayoutSettingRepository](u, uow.RepositoryName(repoargs.PayoutSettingRepoName))
	if err != nil {
		return nil, err
	}
	return &ReferralService{
		uow:         u,
		profileRepo: profileRepo,
		bindingRepo: bindingRepo,
		userRepo:    userRepo,
		commRepo:    commRepo,
		payoutRepo:  payoutRepo,
		settingRepo: settingRepo,
		audit:       audit,
	}, nil
}

// NormalizeReferralCode приводит код к каноническому виду: без пробельных символов
// по краям, в верхнем регистре.
func NormalizeReferralCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// EnsureCode возвращает профиль с текущим реферальным кодом юзера, лениво создавая
// профиль при первом обращении. При force код генерируется заново, прежний код
// перестает действовать для новых привязок (существующие привязки не затрагиваются -
// они хранят id пригласившего, а не код).
func (s *ReferralService) EnsureCode(ctx context.Context, userID int64, force bool) (*domain.AffiliateProfile, error) {
	if !force {
		profile, findErr := s.profileRepo.FindByUserID(ctx, userID)
		if findErr == nil {
			return profile, nil
		}
		if !errors.Is(findErr, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("ensuring referral code: %w", findErr)
		}
	}

	profile, genErr := s.generateCode(ctx, userID, force)
	if genErr != nil {
		return nil, genErr
	}

	if force {
		s.audit.Record(ctx, domain.AuditEvent{
			OperatorID: userID,
			TargetType: "affiliate_profile",
			TargetID:   strconv.FormatInt(profile.ID, 10),
			Action:     "referral.code_regenerate",
			Summary:    "referral code regenerated",
			Detail:     map[string]string{"code": profile.ReferralCode},
		})
	}
	return profile, nil
}

// generateCode в цикле пробует вставить/обновить профиль со свежесгенерированным кодом.
// Коллизия кода (ErrDuplicateKey) приводит к повторной генерации, проигрыш гонки за
// создание профиля (ErrRecordNotFound от вставки) - к чтению профиля победителя.
func (s *ReferralService) generateCode(ctx context.Context, userID int64, force bool) (*domain.AffiliateProfile, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, codeErr := newReferralCode()
		if codeErr != nil {
			return nil, fmt.Errorf("ensuring referral code: %s", codeErr.Error())
		}

		var profile *domain.AffiliateProfile
		var opErr error
		if force {
			profile, opErr = s.profileRepo.UpdateCode(ctx, userID, code)
			// Форс для юзера без профиля создает профиль сразу с новым кодом.
			if opErr != nil && errors.Is(opErr, domain.ErrRecordNotFound) {
				profile, opErr = s.profileRepo.CreateWithCode(ctx, userID, code)
			}
		} else {
			profile, opErr = s.profileRepo.CreateWithCode(ctx, userID, code)
		}

		if opErr == nil {
			return profile, nil
		}
		if errors.Is(opErr, domain.ErrDuplicateKey) {
			continue
		}
		if !force && errors.Is(opErr, domain.ErrRecordNotFound) {
			existing, findErr := s.profileRepo.FindByUserID(ctx, userID)
			if findErr != nil {
				return nil, fmt.Errorf("ensuring referral code: %w", findErr)
			}
			return existing, nil
		}
		return nil, fmt.Errorf("ensuring referral code: %w", opErr)
	}
	return nil, fmt.Errorf("ensuring referral code: %w: no unique code after %d attempts",
		domain.ErrUnknown, maxCodeAttempts)
}

// Resolve находит пригласившего по коду. Код несуществующий, либо принадлежащий
// заблокированному аккаунту, возвращает ErrInvalidReferral.
func (s *ReferralService) Resolve(ctx context.Context, code string) (*domain.AffiliateProfile, error) {
	normalized := NormalizeReferralCode(code)
	if normalized == "" {
		return nil, domain.ErrInvalidReferral
	}

	profile, profileErr := s.profileRepo.FindByCode(ctx, normalized)
	if profileErr != nil {
		if errors.Is(profileErr, domain.ErrRecordNotFound) {
			return nil, domain.ErrInvalidReferral
		}
		return nil, fmt.Errorf("resolving referral code: %w", profileErr)
	}

	owner, ownerErr := s.userRepo.FindByID(ctx, profile.UserID)
	if ownerErr != nil {
		if errors.Is(ownerErr, domain.ErrRecordNotFound) {
			return nil, domain.ErrInvalidReferral
		}
		return nil, fmt.Errorf("resolving referral code: %w", ownerErr)
	}
	if owner.Banned {
		return nil, domain.ErrInvalidReferral
	}

	return profile, nil
}

// Bind создает одноразовую необратимую привязку приглашенного к пригласившему.
// Вызывается внешним флоу регистрации ровно один раз для каждого нового аккаунта.
// Привязка и инкремент счетчика приглашений выполняются в одной транзакции; гонка
// двух одновременных привязок одного invitee разрешается уникальным индексом.
func (s *ReferralService) Bind(ctx context.Context, inviteeID int64, code string) (*domain.ReferralBinding, error) {
	inviter, resolveErr := s.Resolve(ctx, code)
	if resolveErr != nil {
		return nil, resolveErr
	}
	if inviter.UserID == inviteeID {
		return nil, domain.ErrSelfReferral
	}

	var binding *domain.ReferralBinding
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		bindingRepo, repoErr := uow.GetAs[ReferralBindingRepository](tx, uow.RepositoryName(repoargs.BindingRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		profileRepo, repoErr := uow.GetAs[AffiliateProfileRepository](tx, uow.RepositoryName(repoargs.ProfileRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		var createErr error
		binding, createErr = bindingRepo.Create(c, repoargs.BindingCreate{
			InviteeID: inviteeID,
			InviterID: inviter.UserID,
			CodeUsed:  NormalizeReferralCode(code),
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		return profileRepo.IncrementInviteCount(c, inviter.UserID) //nolint:wrapcheck
	})

	if txErr != nil {
		if errors.Is(txErr, domain.ErrDuplicateKey) {
			return nil, domain.ErrAlreadyBound
		}
		return nil, fmt.Errorf("binding invitee %d: %w", inviteeID, txErr)
	}
	return binding, nil
}

// DashboardStats агрегированные показатели пригласившего.
type DashboardStats struct {
	InviteCount            int64
	CommissionBalance      decimal.Decimal
	TotalCommissionEarned  decimal.Decimal
	PendingAmount          decimal.Decimal
	ApprovedAmount         decimal.Decimal
	PayoutProcessingAmount decimal.Decimal
	PayoutPaidAmount       decimal.Decimal
}

type Dashboard struct {
	ReferralCode  string
	Stats         DashboardStats
	Invites       []domain.ReferralBinding
	Inviter       *domain.ReferralBinding
	PayoutSetting *domain.PayoutSetting
}

// GetDashboard собирает сводку реферального кабинета: код, счетчики, последние
// приглашения, собственная привязка и реквизиты выплат. Отсутствие профиля не
// ошибка - вернется сводка с нулевыми показателями.
func (s *ReferralService) GetDashboard(ctx context.Context, userID int64) (*Dashboard, error) {
	var dashboard Dashboard

	profile, profileErr := s.profileRepo.FindByUserID(ctx, userID)
	if profileErr != nil && !errors.Is(profileErr, domain.ErrRecordNotFound) {
		return nil, fmt.Errorf("getting dashboard: %w", profileErr)
	}
	if profile != nil {
		dashboard.ReferralCode = profile.ReferralCode
		dashboard.Stats.InviteCount = profile.InviteCount
		dashboard.Stats.CommissionBalance = profile.CommissionBalance
		dashboard.Stats.TotalCommissionEarned = profile.TotalCommissionEarned
	}

	commSums, commErr := s.commRepo.SumByInviter(ctx, userID)
	if commErr != nil {
		return nil, fmt.Errorf("getting dashboard: %w", commErr)
	}
	for _, sum := range commSums {
		switch sum.Status {
		case domain.CommissionStatusPending:
			dashboard.Stats.PendingAmount = sum.Sum
		case domain.CommissionStatusApproved:
			dashboard.Stats.ApprovedAmount = sum.Sum
		}
	}

	payoutSums, payoutErr := s.payoutRepo.SumByUser(ctx, userID)
	if payoutErr != nil {
		return nil, fmt.Errorf("getting dashboard: %w", payoutErr)
	}
	for _, sum := range payoutSums {
		switch sum.Status {
		case domain.PayoutStatusPending, domain.PayoutStatusApproved:
			dashboard.Stats.PayoutProcessingAmount = dashboard.Stats.PayoutProcessingAmount.Add(sum.Sum)
		case domain.PayoutStatusPaid:
			dashboard.Stats.PayoutPaidAmount = sum.Sum
		}
	}

	invites, invitesErr := s.bindingRepo.GetByInviterID(ctx, userID, dashboardInvitesLimit)
	if invitesErr != nil {
		return nil, fmt.Errorf("getting dashboard: %w", invitesErr)
	}
	dashboard.Invites = invites

	inviter, inviterErr := s.bindingRepo.FindByInviteeID(ctx, userID)
	if inviterErr != nil && !errors.Is(inviterErr, domain.ErrRecordNotFound) {
		return nil, fmt.Errorf("getting dashboard: %w", inviterErr)
	}
	dashboard.Inviter = inviter

	setting, settingErr := s.settingRepo.FindByUserID(ctx, userID)
	if settingErr != nil && !errors.Is(settingErr, domain.ErrRecordNotFound) {
		return nil, fmt.Errorf("getting dashboard: %w", settingErr)
	}
	dashboard.PayoutSetting = setting

	return &dashboard, nil
}
