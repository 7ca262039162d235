package repository

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"obrasgov/internal/domain/entity"
	"obrasgov/internal/domain/sqlite"
	"obrasgov/internal/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := sqlite.Init(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db
}

func seedProjeto(t *testing.T, db *gorm.DB, id string) {
	t.Helper()
	_, _, failed := NewProjetoRepository(db).InsertAll([]entity.ProjetoInvestimento{{
		IDUnico:  id,
		Nome:     "Projeto de teste",
		Natureza: entity.NaturezaObra,
		Especie:  "Construção",
		Situacao: entity.SituacaoCadastrada,
	}})
	require.Nil(t, failed)
}

// The schema itself must reject values the validator would normally catch;
// the check constraints are the last line of defense.
func TestFonteCheckConstraints(t *testing.T) {
	db := newTestDB(t)
	seedProjeto(t, db, "00001.00-01")
	fontes := NewFonteRepository(db)

	t.Run("negative value", func(t *testing.T) {
		_, _, failed := fontes.InsertAll([]entity.FonteDeRecurso{{
			IDProjeto: "00001.00-01",
			Origem:    entity.OrigemFederal,
			ValorInvestimentoPrevisto: decimal.NullDecimal{
				Decimal: decimal.NewFromInt(-500),
				Valid:   true,
			},
		}})
		require.NotNil(t, failed)

		kind, constraint := utils.MapConstraintError(failed.Err)
		assert.Equal(t, "domain", kind)
		assert.Equal(t, "chk_fonte_valor", constraint)
	})

	t.Run("origem outside enumeration", func(t *testing.T) {
		_, _, failed := fontes.InsertAll([]entity.FonteDeRecurso{{
			IDProjeto: "00001.00-01",
			Origem:    "Interplanetária",
		}})
		require.NotNil(t, failed)

		kind, constraint := utils.MapConstraintError(failed.Err)
		assert.Equal(t, "domain", kind)
		assert.Equal(t, "chk_fonte_origem", constraint)
	})

	t.Run("null value passes the check", func(t *testing.T) {
		inserted, _, failed := fontes.InsertAll([]entity.FonteDeRecurso{{
			IDProjeto: "00001.00-01",
			Origem:    entity.OrigemPrivado,
		}})
		require.Nil(t, failed)
		assert.Equal(t, 1, inserted)
	})
}

func TestProjetoCheckConstraints(t *testing.T) {
	db := newTestDB(t)

	_, _, failed := NewProjetoRepository(db).InsertAll([]entity.ProjetoInvestimento{{
		IDUnico:  "00001.00-01",
		Nome:     "Projeto de teste",
		Natureza: "Inventada",
		Especie:  "Construção",
		Situacao: entity.SituacaoCadastrada,
	}})
	require.NotNil(t, failed)

	kind, constraint := utils.MapConstraintError(failed.Err)
	assert.Equal(t, "domain", kind)
	assert.Equal(t, "chk_projeto_natureza", constraint)
}

func TestUpsertSkipsExistingKeys(t *testing.T) {
	db := newTestDB(t)
	instituicoes := NewInstituicaoRepository(db)

	inserted, skipped, failed := instituicoes.UpsertAll([]entity.Instituicao{
		{Codigo: "100", Nome: "Primeira"},
	})
	require.Nil(t, failed)
	assert.Equal(t, 1, inserted)
	assert.Zero(t, skipped)

	// Same key again: skipped, attributes untouched.
	inserted, skipped, failed = instituicoes.UpsertAll([]entity.Instituicao{
		{Codigo: "100", Nome: "Segunda grafia"},
	})
	require.Nil(t, failed)
	assert.Zero(t, inserted)
	assert.Equal(t, 1, skipped)

	inst, err := instituicoes.FindByCodigo("100")
	require.NoError(t, err)
	assert.Equal(t, "Primeira", inst.Nome)
}

func TestInsertBatchRollsBackWholeTable(t *testing.T) {
	db := newTestDB(t)
	seedProjeto(t, db, "00001.00-01")
	vinculos := NewVinculoRepository(db)

	inserted, _, failed := vinculos.InsertEixos([]entity.ProjetoEixo{
		{IDProjeto: "00001.00-01", IDEixo: 1}, // eixo 1 never created
	})
	require.NotNil(t, failed)
	assert.Zero(t, inserted)

	kind, _ := utils.MapConstraintError(failed.Err)
	assert.Equal(t, "integrity", kind)

	n, err := vinculos.CountTomadores("00001.00-01")
	require.NoError(t, err)
	assert.Zero(t, n)
}
