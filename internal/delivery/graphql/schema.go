package graphql

// Schema mirrors the dashboard's GraphQL contract.
const Schema = `
schema {
  query: Query
  mutation: Mutation
}

type Product {
  id: ID!
  name: String!
  sku: String!
  warehouse: String!
  stock: Int!
  demand: Int!
}

type Warehouse {
  id: ID!
  name: String!
  location: String!
}

type ChartDataPoint {
  date: String!
  stock: Int!
  demand: Int!
}

type KPI {
  totalStock: Int!
  totalDemand: Int!
  fillRate: Float!
}

type Query {
  products(search: String, warehouse: String, status: String, page: Int = 1, pageSize: Int = 10): [Product!]!
  warehouses: [Warehouse!]!
  chartData(range: String!): [ChartDataPoint!]!
  kpis: KPI!
}

type Mutation {
  updateProductDemand(productId: ID!, newDemand: Int!): Product!
  transferStock(productId: ID!, quantity: Int!, destinationWarehouse: String!): Product!
}
`
