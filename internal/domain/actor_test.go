package domain

import (
	"errors"
	"testing"
)

func TestRole_Can(t *testing.T) {
	tests := []struct {
		role Role
		op   Operation
		want bool
	}{
		{RoleAdmin, OpCreateResource, true},
		{RoleHR, OpCreateResource, true},
		{RoleEmployee, OpCreateResource, false},
		{RoleManager, OpCreateResource, false},
		{RoleFinance, OpCreateResource, false},
		{RoleCandidate, OpCreateResource, false},

		{RoleEmployee, OpRecordMovement, true},
		{RoleManager, OpRecordMovement, true},
		{RoleHR, OpRecordMovement, true},
		{RoleAdmin, OpRecordMovement, true},
		{RoleFinance, OpRecordMovement, false},
		{RoleCandidate, OpRecordMovement, false},

		{RoleFinance, OpVerifyLedger, true},
		{RoleEmployee, OpVerifyLedger, false},
	}

	for _, tt := range tests {
		if got := tt.role.Can(tt.op); got != tt.want {
			t.Errorf("%s.Can(%s) = %v, want %v", tt.role, tt.op, got, tt.want)
		}
	}
}

func TestActor_Authorize(t *testing.T) {
	employee := Actor{ID: "u-1", Role: RoleEmployee}

	if err := employee.Authorize(OpRecordMovement); err != nil {
		t.Errorf("employee should record movements, got %v", err)
	}

	err := employee.Authorize(OpCreateResource)
	if !errors.Is(err, ErrOperationNotAllowed) {
		t.Errorf("employee creating resources: error = %v, want ErrOperationNotAllowed", err)
	}
}

func TestRole_IsValid(t *testing.T) {
	for _, r := range []Role{RoleCandidate, RoleEmployee, RoleManager, RoleHR, RoleFinance, RoleAdmin} {
		if !r.IsValid() {
			t.Errorf("%s should be valid", r)
		}
	}

	if Role("operator").IsValid() {
		t.Error("operator is not part of the enumeration")
	}
}
