package httpapi

import "net/http"

func (s *Server) getStatement(w http.ResponseWriter, r *http.Request) {
    id, ok := pathID(w, r)
    if !ok {
        return
    }
    from, err := queryDate(r, "from")
    if err != nil {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid from date"})
        return
    }
    to, err := queryDate(r, "to")
    if err != nil {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid to date"})
        return
    }
    st, err := s.stmt.ClientStatement(r.Context(), id, from, to)
    if err != nil {
        s.writeServiceError(w, err)
        return
    }
    toJSON(w, http.StatusOK, toStatementResponse(id, st))
}

func (s *Server) getProjection(w http.ResponseWriter, r *http.Request) {
    id, ok := pathID(w, r)
    if !ok {
        return
    }
    from, err := queryDate(r, "from")
    if err != nil {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid from date"})
        return
    }
    to, err := queryDate(r, "to")
    if err != nil {
        toJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid to date"})
        return
    }
    st, proj, err := s.stmt.ClientProjection(r.Context(), id, from, to)
    if err != nil {
        s.writeServiceError(w, err)
        return
    }
    toJSON(w, http.StatusOK, projectionResponse{
        statementResponse:   toStatementResponse(id, st),
        BalanceAfterCheques: proj.BalanceAfterCheques,
        IncomingPending:     proj.IncomingPending,
        OutgoingPending:     proj.OutgoingPending,
    })
}
