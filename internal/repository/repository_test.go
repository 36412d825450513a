package repository

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tpvcomida/internal/models"
	"tpvcomida/internal/store"
)

const clientsFixture = `<?xml version="1.0" encoding="utf-8"?>
<Clientes>
  <Cliente Id="7">
    <Nombre>María</Nombre>
    <Apellidos>López</Apellidos>
    <Nivel>Plata</Nivel>
    <Fidelizacion>
      <PuntosAcumulados>950</PuntosAcumulados>
      <PuntosCanjeados>100</PuntosCanjeados>
    </Fidelizacion>
  </Cliente>
  <Cliente Id="12">
    <Nombre>Luis</Nombre>
    <Apellidos>Pérez</Apellidos>
    <Nivel>Bronce</Nivel>
  </Cliente>
</Clientes>`

const ordersFixture = `<?xml version="1.0" encoding="utf-8"?>
<Pedidos>
  <Pedido Id="1001">
    <ClienteId>7</ClienteId>
    <NombreCliente>María López</NombreCliente>
    <TipoEntrega>Mesa 5</TipoEntrega>
    <Fecha>2024-05-10</Fecha>
    <Hora>14:30</Hora>
    <Estado>Entregado</Estado>
    <Total>23.5</Total>
    <Detalle><Item>Paella</Item></Detalle>
  </Pedido>
  <Pedido Id="1002">
    <ClienteId>99</ClienteId>
    <NombreCliente>Cliente Antiguo</NombreCliente>
    <TipoEntrega>Domicilio</TipoEntrega>
    <Fecha>2024-05-10</Fecha>
    <Hora>15:10</Hora>
    <Estado>Pendiente</Estado>
    <Total>9.9</Total>
    <Detalle><Item>Tortilla</Item></Detalle>
  </Pedido>
  <Pedido Id="1003">
    <ClienteId>0</ClienteId>
    <NombreCliente>Cliente Mostrador</NombreCliente>
    <TipoEntrega>Recoger</TipoEntrega>
    <Fecha>2024-05-11</Fecha>
    <Hora>12:00</Hora>
    <Estado>pendiente</Estado>
    <Total>4.5</Total>
    <Detalle><Item>Café</Item></Detalle>
  </Pedido>
</Pedidos>`

const usersFixture = `<?xml version="1.0" encoding="utf-8"?>
<ArrayOfUser>
  <User>
    <username>ana</username>
    <firstname>Ana</firstname>
    <lastname>García</lastname>
    <email>ana@appcomida.es</email>
    <last_access>2024-05-12T18:30:00Z</last_access>
    <image></image>
    <salt>a1b2c3d4</salt>
    <digest>abcdef0123456789</digest>
  </User>
</ArrayOfUser>`

const productsFixture = `<?xml version="1.0" encoding="utf-8"?>
<ArrayOfProduct>
  <Product>
    <Id>1</Id><Name>Paella</Name><Category>Platos</Category><SubCategory>Arroces</SubCategory>
    <Price>14.5</Price><IsAvailable>true</IsAvailable>
  </Product>
  <Product>
    <Id>2</Id><Name>Sangría</Name><Category>Bebidas</Category><SubCategory></SubCategory>
    <Price>6.0</Price><IsAvailable>true</IsAvailable>
  </Product>
  <Product>
    <Id>3</Id><Name>Fabada</Name><Category>platos</Category><SubCategory>Cuchara</SubCategory>
    <Price>11.0</Price><IsAvailable>false</IsAvailable>
  </Product>
</ArrayOfProduct>`

func setupStore(t *testing.T) *store.Store {
	t.Helper()
	dir := t.TempDir()
	dataDir := filepath.Join(dir, "data")
	require.NoError(t, os.MkdirAll(dataDir, 0o755))

	files := map[string]string{
		store.ClientsFile:  clientsFixture,
		store.OrdersFile:   ordersFixture,
		store.UsersFile:    usersFixture,
		store.ProductsFile: productsFixture,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dataDir, name), []byte(content), 0o644))
	}

	return store.NewAt(dir, zap.NewNop())
}

func TestOrdersLinkToCustomers(t *testing.T) {
	st := setupStore(t)
	customers := NewCustomers(st, zap.NewNop())
	orders := NewOrders(st, customers, zap.NewNop())

	all := orders.All()
	require.Len(t, all, 3)

	require.NotNil(t, all[0].Customer)
	assert.Equal(t, 7, all[0].Customer.ID)
	assert.Equal(t, "ID: C-0007", all[0].CustomerLabel())

	// ClienteId 99 has no matching customer: kept as a guest-style order,
	// never an error.
	assert.Nil(t, all[1].Customer)
	assert.Equal(t, "ID: C-0099", all[1].CustomerLabel())

	assert.Nil(t, all[2].Customer)
	assert.True(t, all[2].IsGuest())
	assert.Equal(t, models.GuestLabel, all[2].CustomerLabel())
}

func TestOrdersByStatusIsCaseInsensitive(t *testing.T) {
	st := setupStore(t)
	orders := NewOrders(st, NewCustomers(st, zap.NewNop()), zap.NewNop())

	pending := orders.ByStatus("PENDIENTE")
	require.Len(t, pending, 2)
	assert.Equal(t, "1002", pending[0].ID)
	assert.Equal(t, "1003", pending[1].ID)
}

func TestOrdersSearch(t *testing.T) {
	st := setupStore(t)
	orders := NewOrders(st, NewCustomers(st, zap.NewNop()), zap.NewNop())

	assert.Len(t, orders.Search(""), 3)
	assert.Len(t, orders.Search("maría"), 1)
	assert.Len(t, orders.Search("1003"), 1)
	assert.Len(t, orders.Search("entregado"), 1)
	assert.Empty(t, orders.Search("no-match"))
}

func TestUsersUpdateLastAccessPersists(t *testing.T) {
	st := setupStore(t)
	users := NewUsers(st, zap.NewNop())

	stamp := time.Date(2025, 1, 2, 9, 30, 0, 0, time.UTC)
	users.UpdateLastAccess("ANA", stamp)

	reloaded := NewUsers(st, zap.NewNop())
	user := reloaded.FindByUsername("ana")
	require.NotNil(t, user)
	assert.True(t, stamp.Equal(user.LastAccess.Time))
}

func TestUsersUpdateLastAccessUnknownUserIsNoop(t *testing.T) {
	st := setupStore(t)
	users := NewUsers(st, zap.NewNop())

	users.UpdateLastAccess("ghost", time.Now())

	assert.Len(t, users.All(), 1)
}

func TestCustomersNextID(t *testing.T) {
	st := setupStore(t)
	customers := NewCustomers(st, zap.NewNop())

	assert.Equal(t, 13, customers.NextID())

	empty := NewCustomers(store.NewAt(t.TempDir(), zap.NewNop()), zap.NewNop())
	assert.Equal(t, 1, empty.NextID())
}

func TestProductsFilters(t *testing.T) {
	st := setupStore(t)
	products := NewProducts(st, zap.NewNop())

	platos := products.ByCategory("Platos")
	require.Len(t, platos, 2)
	assert.Equal(t, "Paella", platos[0].Name)
	assert.Equal(t, "Fabada", platos[1].Name)

	available := products.Available()
	require.Len(t, available, 2)

	categories := products.Categories()
	assert.Equal(t, []string{"Platos", "Bebidas"}, categories)
}

func TestAllNeverFailsOnMissingData(t *testing.T) {
	st := store.NewAt(t.TempDir(), zap.NewNop())

	customers := NewCustomers(st, zap.NewNop())
	orders := NewOrders(st, customers, zap.NewNop())

	assert.Empty(t, NewUsers(st, zap.NewNop()).All())
	assert.Empty(t, NewProducts(st, zap.NewNop()).All())
	assert.Empty(t, customers.All())
	assert.Empty(t, orders.All())
}
