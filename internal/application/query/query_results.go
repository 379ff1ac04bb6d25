package query

import "github.com/benjaminhze/cribhunter/internal/application/common"

type UserQueryResult struct {
	Result *common.UserResult `json:"result"`
}

type PropertyQueryResult struct {
	Result *common.PropertyResult `json:"result"`
}

type PropertyQueryListResult struct {
	Result []*common.PropertyResult `json:"result"`
}
