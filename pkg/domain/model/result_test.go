package model_test

import (
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/wildcards-gg/wcadmin/pkg/domain/model"
	"github.com/wildcards-gg/wcadmin/pkg/domain/types"
)

func TestDispatchResult(t *testing.T) {
	gt.Equal(t, model.DispatchResult{Success: true}, model.DispatchSucceeded())

	res := model.DispatchFailed(goerr.New("Missing Access"))
	gt.False(t, res.Success)
	gt.Equal(t, "Missing Access", res.Error)
}

func TestStatus_IsError(t *testing.T) {
	var none *model.Status
	gt.False(t, none.IsError())
	gt.True(t, (&model.Status{Kind: types.StatusError}).IsError())
	gt.False(t, (&model.Status{Kind: types.StatusSuccess}).IsError())
}
