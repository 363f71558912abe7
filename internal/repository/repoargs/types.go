package repoargs

type RepositoryName string

const (
	UserRepoName          RepositoryName = "user"
	ProfileRepoName       RepositoryName = "affiliate_profile"
	BindingRepoName       RepositoryName = "referral_binding"
	RuleRepoName          RepositoryName = "commission_rule"
	CommissionRepoName    RepositoryName = "commission_record"
	PayoutRequestRepoName RepositoryName = "payout_request"
	PayoutSettingRepoName RepositoryName = "payout_setting"
)
