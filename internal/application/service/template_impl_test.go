package service

import (
	"context"
	"testing"

	"fleetcare/internal/application/dto"
	"fleetcare/internal/domain/constant"
	"fleetcare/internal/domain/entity"
	appErrors "fleetcare/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) templateService() TemplateService {
	return NewTemplateService(e.templateRepo, testLogger{})
}

func TestTemplateListAvailable(t *testing.T) {
	env := newTestEnv(t)
	svc := env.templateService()

	system := &entity.MaintenanceTemplate{TaskName: "Oil Change", CombinationPolicy: constant.PolicyAll}
	mine := &entity.MaintenanceTemplate{OwnerID: strPtr("owner-1"), TaskName: "Winter Tires", CombinationPolicy: constant.PolicyAll}
	theirs := &entity.MaintenanceTemplate{OwnerID: strPtr("owner-2"), TaskName: "Secret", CombinationPolicy: constant.PolicyAll}
	for _, tpl := range []*entity.MaintenanceTemplate{system, mine, theirs} {
		require.NoError(t, env.db.Create(tpl).Error)
	}

	list, err := svc.ListAvailable(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	names := []string{list[0].TaskName, list[1].TaskName}
	assert.ElementsMatch(t, []string{"Oil Change", "Winter Tires"}, names)
}

func TestTemplateCreateAndUpdate(t *testing.T) {
	env := newTestEnv(t)
	svc := env.templateService()

	resp, err := svc.Create(context.Background(), "owner-1", dto.CreateTemplateRequest{
		TaskName:       "Brake Inspection",
		IntervalMonths: intPtr(12),
	})
	require.NoError(t, err)
	assert.False(t, resp.System)
	assert.Equal(t, constant.PolicyAll, resp.CombinationPolicy)

	updated, err := svc.Update(context.Background(), resp.ID, "owner-1", dto.UpdateTemplateRequest{
		IntervalMonths: intPtr(24),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.IntervalMonths)
	assert.Equal(t, 24, *updated.IntervalMonths)

	_, err = svc.Create(context.Background(), "owner-1", dto.CreateTemplateRequest{})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestTemplateSystemAndForeignAreImmutable(t *testing.T) {
	env := newTestEnv(t)
	svc := env.templateService()

	system := &entity.MaintenanceTemplate{TaskName: "Oil Change", CombinationPolicy: constant.PolicyAll}
	theirs := &entity.MaintenanceTemplate{OwnerID: strPtr("owner-2"), TaskName: "Theirs", CombinationPolicy: constant.PolicyAll}
	require.NoError(t, env.db.Create(system).Error)
	require.NoError(t, env.db.Create(theirs).Error)

	_, err := svc.Update(context.Background(), system.ID, "owner-1", dto.UpdateTemplateRequest{TaskName: strPtr("x")})
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
	err = svc.Delete(context.Background(), theirs.ID, "owner-1")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}
