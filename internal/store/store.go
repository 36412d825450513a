// Package store reads and writes the per-entity XML files that back the
// application. It centralizes every load and save so the domain never
// touches the filesystem directly.
package store

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"tpvcomida/internal/models"
)

// File names under the discovered data directory.
const (
	UsersFile    = "users.xml"
	ProductsFile = "products.xml"
	ClientsFile  = "clients.xml"
	OrdersFile   = "pedidos.xml"
)

// Store locates and (de)serializes the data files. Every Load degrades to an
// empty collection on failure so the application can keep running.
type Store struct {
	baseDir string
	log     *zap.Logger
}

// New builds a Store rooted at the current working directory.
func New(log *zap.Logger) *Store {
	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}
	return NewAt(dir, log)
}

// NewAt builds a Store rooted at an explicit directory. Used by tests and by
// callers that already resolved the project root.
func NewAt(dir string, log *zap.Logger) *Store {
	return &Store{baseDir: dir, log: log}
}

// Wrapper documents. Users and products use the serializer's default array
// roots; clients and orders carry explicit Spanish roots.
type userList struct {
	XMLName xml.Name             `xml:"ArrayOfUser"`
	Users   []models.UserAccount `xml:"User"`
}

type productList struct {
	XMLName  xml.Name         `xml:"ArrayOfProduct"`
	Products []models.Product `xml:"Product"`
}

type clientList struct {
	XMLName xml.Name          `xml:"Clientes"`
	Clients []models.Customer `xml:"Cliente"`
}

type orderList struct {
	XMLName xml.Name       `xml:"Pedidos"`
	Orders  []models.Order `xml:"Pedido"`
}

// LoadUsers reads users.xml. Missing file or parse failure yields an empty
// slice; a parse failure is logged with its detail.
func (s *Store) LoadUsers() []models.UserAccount {
	var doc userList
	if !s.load(UsersFile, &doc, false) {
		return []models.UserAccount{}
	}
	return doc.Users
}

// SaveUsers rewrites the whole users collection.
func (s *Store) SaveUsers(users []models.UserAccount) error {
	return s.save(UsersFile, userList{Users: users})
}

// LoadProducts reads products.xml.
func (s *Store) LoadProducts() []models.Product {
	var doc productList
	if !s.load(ProductsFile, &doc, false) {
		return []models.Product{}
	}
	return doc.Products
}

// SaveProducts rewrites the whole product catalog.
func (s *Store) SaveProducts(products []models.Product) error {
	return s.save(ProductsFile, productList{Products: products})
}

// LoadClients reads clients.xml. Unlike orders, a missing clients file
// indicates a misconfigured installation and is surfaced as a warning.
func (s *Store) LoadClients() []models.Customer {
	var doc clientList
	if !s.load(ClientsFile, &doc, true) {
		return []models.Customer{}
	}
	return doc.Clients
}

// SaveClients rewrites the whole customer collection.
func (s *Store) SaveClients(clients []models.Customer) error {
	return s.save(ClientsFile, clientList{Clients: clients})
}

// LoadOrders reads pedidos.xml. A missing file simply means no orders yet.
func (s *Store) LoadOrders() []models.Order {
	var doc orderList
	if !s.load(OrdersFile, &doc, false) {
		return []models.Order{}
	}
	return doc.Orders
}

// SaveOrders rewrites the whole order collection.
func (s *Store) SaveOrders(orders []models.Order) error {
	return s.save(OrdersFile, orderList{Orders: orders})
}

// load resolves, reads and decodes one file into doc. It returns false when
// the caller should fall back to an empty collection. warnOnMissing marks
// collections whose absence is abnormal.
func (s *Store) load(name string, doc any, warnOnMissing bool) bool {
	path, found := FindDataFile(s.baseDir, name)
	if !found {
		if warnOnMissing {
			s.log.Warn("data file not found, starting with an empty collection",
				zap.String("file", filepath.Join(dataDirName, name)))
		}
		return false
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		s.log.Error("cannot read data file", zap.String("path", path), zap.Error(err))
		return false
	}

	if err := xml.Unmarshal(raw, doc); err != nil {
		// Distinguish a malformed file from an absent one: the operator can
		// fix the former by hand.
		s.log.Error("malformed data file, contents ignored",
			zap.String("path", path), zap.Error(err))
		return false
	}

	return true
}

// save serializes doc and overwrites the resolved file. When the file does
// not exist yet it is created under <baseDir>/data.
func (s *Store) save(name string, doc any) error {
	path, found := FindDataFile(s.baseDir, name)
	if !found {
		dir := filepath.Join(s.baseDir, dataDirName)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
		path = filepath.Join(dir, name)
	}

	raw, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize %s: %w", name, err)
	}

	if err := os.WriteFile(path, append([]byte(xml.Header), raw...), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	return nil
}
