package cidsdkmock_test

import (
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/cidverse/cid-sdk-go/pkg/cidsdk"
	"github.com/cidverse/cid-sdk-go/pkg/cidsdk/cidsdkmock"
)

var _ cidsdk.SDK = (*cidsdkmock.MockSDK)(nil)

// lintAction is a minimal module-scoped action.
func lintAction(sdk cidsdk.SDK) error {
	module, err := sdk.CurrentModule()
	if err != nil {
		return err
	}
	result, err := sdk.ExecuteCommand(cidsdk.CommandExecution{
		Command: "golangci-lint run",
		WorkDir: module.ModuleDir,
	})
	if err != nil {
		return err
	}
	if result.Failed() {
		return sdk.Log(cidsdk.LogMessage{Level: "error", Message: "lint failed", Context: map[string]any{"module": module.Slug}})
	}
	return nil
}

func TestMockSDK_Action(t *testing.T) {
	ctrl := gomock.NewController(t)
	sdk := cidsdkmock.NewMockSDK(ctrl)

	sdk.EXPECT().CurrentModule().Return(&cidsdk.ProjectModule{Slug: "api", ModuleDir: "/project/api"}, nil)
	sdk.EXPECT().ExecuteCommand(cidsdk.CommandExecution{
		Command: "golangci-lint run",
		WorkDir: "/project/api",
	}).Return(&cidsdk.CommandExecutionResult{Code: 1}, nil)
	sdk.EXPECT().Log(gomock.Any()).DoAndReturn(func(msg cidsdk.LogMessage) error {
		if msg.Level != "error" || msg.Context["module"] != "api" {
			t.Errorf("unexpected log message: %+v", msg)
		}
		return nil
	})

	if err := lintAction(sdk); err != nil {
		t.Fatalf("lintAction() error = %v", err)
	}
}

func TestMockSDK_ActionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	sdk := cidsdkmock.NewMockSDK(ctrl)

	notScoped := &cidsdk.Error{Status: 400, Title: "bad request", Details: "not module scoped"}
	sdk.EXPECT().CurrentModule().Return(nil, notScoped)

	err := lintAction(sdk)
	var apiErr *cidsdk.Error
	if !errors.As(err, &apiErr) || apiErr.Status != 400 {
		t.Fatalf("lintAction() error = %v, want the daemon error", err)
	}
}
